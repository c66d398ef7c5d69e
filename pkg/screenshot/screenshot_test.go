package screenshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/screenshotctl/pkg/command/commandmock"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/desktop"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/session"
)

func lookupEnv(env map[string]string) OptionLookupEnv {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func newTestScreenshoter(
	t *testing.T,
	runner *commandmock.Runner,
	sessionType string,
) (*Screenshoter, config.Config) {
	cfg := config.Default()
	cfg.TempDir = t.TempDir()
	return New(
		cfg,
		OptionRunner{Runner: runner},
		lookupEnv(map[string]string{session.EnvSessionType: sessionType}),
	), cfg
}

func TestCaptureFullX11Scrot(t *testing.T) {
	ctx := context.Background()
	runner := commandmock.NewRunner().
		WithOnlyAvailable("scrot").
		WithOnRun(commandmock.WriteLastArgument)
	s, _ := newTestScreenshoter(t, runner, "x11")

	dest := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.CaptureFull(ctx, dest))
	require.Equal(t, [][]string{{"scrot", dest}}, runner.CommandLines())
}

func TestCaptureWindowWaylandGNOME(t *testing.T) {
	ctx := context.Background()
	runner := commandmock.NewRunner().
		WithOnlyAvailable("gnome-screenshot").
		WithOnRun(commandmock.WriteLastArgument)
	s, _ := newTestScreenshoter(t, runner, "wayland")

	dest := filepath.Join(t.TempDir(), "w.png")
	require.NoError(t, s.CaptureWindow(ctx, dest))
	require.Equal(t, [][]string{{"gnome-screenshot", "-w", "-e", "shadow", "-f", dest}}, runner.CommandLines())
}

func TestCaptureAreaFreezeTwice(t *testing.T) {
	ctx := context.Background()
	runner := commandmock.NewRunner().
		WithOnlyAvailable("scrot", "feh").
		WithOnRun(commandmock.WriteLastArgument)
	s, cfg := newTestScreenshoter(t, runner, "x11")

	dest := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, s.CaptureArea(ctx, dest, true))
	require.NoError(t, s.CaptureArea(ctx, dest, true))

	entries, err := os.ReadDir(cfg.TempDir)
	require.NoError(t, err)
	require.Empty(t, entries)
	for _, viewer := range runner.StartedProcesses("feh") {
		running, err := viewer.IsRunning(ctx)
		require.NoError(t, err)
		require.False(t, running)
	}
}

func TestCaptureNoCompatibleTool(t *testing.T) {
	ctx := context.Background()
	runner := commandmock.NewRunner().WithOnlyAvailable()
	s, _ := newTestScreenshoter(t, runner, "wayland")

	err := s.CaptureFull(ctx, filepath.Join(t.TempDir(), "out.png"))
	var noToolErr desktop.ErrNoCompatibleTool
	require.ErrorAs(t, err, &noToolErr)
	require.Equal(t, session.KindWayland, noToolErr.Session)
	require.Empty(t, runner.CommandLines())
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	runner := commandmock.NewRunner().WithOnlyAvailable("spectacle", "scrot")
	s, _ := newTestScreenshoter(t, runner, "")
	sess, d, err := s.Detect(ctx)
	require.NoError(t, err)
	require.Equal(t, session.KindX11, sess)
	require.Equal(t, desktop.KindKDE, d)
	require.Empty(t, runner.CommandLines())

	s.Config.SessionOverride = "Wayland"
	sess, d, err = s.Detect(ctx)
	require.NoError(t, err)
	require.Equal(t, session.KindWayland, sess)
	require.Equal(t, desktop.KindKDE, d)

	s.Config.SessionOverride = "mir"
	_, _, err = s.Detect(ctx)
	require.Error(t, err)
}

func TestCaptureMacosOverride(t *testing.T) {
	ctx := context.Background()
	runner := commandmock.NewRunner().WithOnRun(commandmock.WriteLastArgument)
	s, _ := newTestScreenshoter(t, runner, "x11")
	s.Config.SessionOverride = "macos"

	dest := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.CaptureArea(ctx, dest, true))
	require.Equal(t, [][]string{{"screencapture", "-s", dest}}, runner.CommandLines())
	require.Len(t, runner.Calls(true), 1)
}

func TestCaptureFullCancelled(t *testing.T) {
	ctx, cancelFn := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelFn()

	runner := commandmock.NewRunner().WithBlocking("screencapture")
	s, _ := newTestScreenshoter(t, runner, "x11")
	s.Config.SessionOverride = "macos"

	dest := filepath.Join(t.TempDir(), "out.png")
	err := s.CaptureFull(ctx, dest)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	_, statErr := os.Stat(dest)
	require.True(t, os.IsNotExist(statErr))
}
