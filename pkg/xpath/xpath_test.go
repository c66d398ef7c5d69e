package xpath

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for rawPath, expected := range map[string]string{
		"~":                         home,
		"~/.config/a.yaml":          filepath.Join(home, ".config/a.yaml"),
		"/tmp/a.png":                "/tmp/a.png",
		"relative/~/a.png":          "relative/~/a.png",
		"$SCREENSHOTCTL_TEST/a.png": "/run/test/a.png",
	} {
		t.Run(rawPath, func(t *testing.T) {
			t.Setenv("SCREENSHOTCTL_TEST", "/run/test")
			result, err := Expand(rawPath)
			require.NoError(t, err)
			require.Equal(t, expected, result)
		})
	}
}

func TestLookupTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("requires /bin/sh")
	}

	toolPath, err := LookupTool("sh")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(toolPath))

	_, err = LookupTool("screenshotctl-test-binary-that-does-not-exist")
	require.Error(t, err)
}
