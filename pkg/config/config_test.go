package config

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigWriteRead(t *testing.T) {
	cfg := Default()
	cfg.TempDir = "/var/tmp/screenshots"
	cfg.StrictExitStatus = true
	cfg.Probe.Mode = ProbeModeExitStatus
	cfg.Probe.Timeout = 5 * time.Second
	cfg.Tools.Scrot = "/opt/scrot/bin/scrot"

	var b bytes.Buffer
	n, err := cfg.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, int64(b.Len()), n)

	var cfgDup Config
	_, err = cfgDup.ReadFrom(&b)
	require.NoError(t, err)
	require.Equal(t, cfg, cfgDup)
}

func TestConfigReadDefaults(t *testing.T) {
	var cfg Config
	_, err := cfg.Read([]byte("tools:\n  feh: /usr/local/bin/feh\n"))
	require.NoError(t, err)
	require.Equal(t, ProbeModeSpawn, cfg.Probe.Mode)
	require.Equal(t, "/usr/local/bin/feh", cfg.Tools.Feh)
	require.Equal(t, "gnome-screenshot", cfg.Tools.GnomeScreenshot)
	require.Equal(t, "grim", cfg.Tools.Grim)
}

func TestConfigReadInvalidProbeMode(t *testing.T) {
	var cfg Config
	_, err := cfg.Read([]byte("probe:\n  mode: guess\n"))
	require.Error(t, err)
}

func TestReadOrCreateConfigFile(t *testing.T) {
	ctx := context.Background()
	cfgPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := ReadOrCreateConfigFile(ctx, cfgPath)
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)

	cfg.LegacyFixedPath = true
	require.NoError(t, WriteConfigToPath(ctx, cfgPath, *cfg))

	cfgReread, err := ReadOrCreateConfigFile(ctx, cfgPath)
	require.NoError(t, err)
	require.True(t, cfgReread.LegacyFixedPath)
}

func TestGetTempDir(t *testing.T) {
	cfg := Default()
	require.NotEmpty(t, cfg.GetTempDir())
	cfg.TempDir = "/somewhere"
	require.Equal(t, "/somewhere", cfg.GetTempDir())
}
