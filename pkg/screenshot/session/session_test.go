package session

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDetect(t *testing.T) {
	for _, value := range []string{"wayland", "Wayland", "WAYLAND", "wAyLaNd"} {
		require.Equal(t, KindWayland, Detect(env(map[string]string{EnvSessionType: value})), value)
	}
	for _, value := range []string{"x11", "X11", "tty", "mir", ""} {
		require.Equal(t, KindX11, Detect(env(map[string]string{EnvSessionType: value})), value)
	}
}

func TestDetectUnset(t *testing.T) {
	expected := KindX11
	if runtime.GOOS == "darwin" {
		expected = KindMacos
	}
	require.Equal(t, expected, Detect(env(nil)))
}

func TestDetectFromEnv(t *testing.T) {
	t.Setenv(EnvSessionType, "Wayland")
	require.Equal(t, KindWayland, DetectFromEnv())
	t.Setenv(EnvSessionType, "x11")
	require.Equal(t, KindX11, DetectFromEnv())
}

func TestParseKind(t *testing.T) {
	require.Equal(t, KindWayland, ParseKind(" Wayland "))
	require.Equal(t, KindX11, ParseKind("x11"))
	require.Equal(t, KindMacos, ParseKind("macos"))
	require.Equal(t, KindUndefined, ParseKind("haiku"))
	require.Equal(t, KindUndefined, ParseKind(""))
}
