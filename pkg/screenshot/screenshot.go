// Package screenshot takes screenshots by delegating to whatever
// screenshot tool the current desktop provides.
package screenshot

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/screenshotctl/pkg/command"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/desktop"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/session"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/strategy"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

type Kind = types.Kind

const (
	KindUndefined = types.KindUndefined
	KindArea      = types.KindArea
	KindWindow    = types.KindWindow
	KindFull      = types.KindFull
)

func ParseKind(s string) Kind {
	return types.ParseKind(s)
}

type Screenshoter struct {
	Config    config.Config
	Runner    command.Runner
	LookupEnv FuncLookupEnv
}

func New(
	cfg config.Config,
	opts ...Option,
) *Screenshoter {
	opt := Options(opts).Aggregate()
	s := &Screenshoter{
		Config:    cfg,
		Runner:    opt.Runner,
		LookupEnv: opt.LookupEnv,
	}
	if s.Runner == nil {
		s.Runner = command.ExecRunner{}
	}
	if s.LookupEnv == nil {
		s.LookupEnv = os.LookupEnv
	}
	return s
}

// CaptureArea lets the user select a region and saves it to destination.
// With freeze the screen is shown frozen during the selection
// (where the desktop does not freeze it by itself).
func (s *Screenshoter) CaptureArea(
	ctx context.Context,
	destination string,
	freeze bool,
) error {
	return s.Capture(ctx, KindArea, destination, freeze)
}

func (s *Screenshoter) CaptureWindow(
	ctx context.Context,
	destination string,
) error {
	return s.Capture(ctx, KindWindow, destination, false)
}

func (s *Screenshoter) CaptureFull(
	ctx context.Context,
	destination string,
) error {
	return s.Capture(ctx, KindFull, destination, false)
}

func (s *Screenshoter) Capture(
	ctx context.Context,
	kind Kind,
	destination string,
	freeze bool,
) (_err error) {
	ctx = belt.WithField(ctx, "screenshot_kind", kind.String())
	logger.Debugf(ctx, "Capture(ctx, %s, '%s', %t)", kind, destination, freeze)
	defer func() { logger.Debugf(ctx, "/Capture(ctx, %s, '%s', %t): %v", kind, destination, freeze, _err) }()

	_, d, err := s.Detect(ctx)
	if err != nil {
		return err
	}

	st, err := strategy.New(d, strategy.NewParams(s.Runner, s.Config))
	if err != nil {
		return fmt.Errorf("unable to initialize the capture strategy: %w", err)
	}
	return st.Capture(ctx, kind, destination, freeze)
}

// Detect returns the session kind and the desktop strategy that would be used.
// No capture is performed.
func (s *Screenshoter) Detect(
	ctx context.Context,
) (session.Kind, desktop.Kind, error) {
	sess, err := s.detectSession(ctx)
	if err != nil {
		return session.KindUndefined, desktop.KindUndefined, err
	}

	d, err := desktop.NewResolver(s.Runner, s.Config).Resolve(ctx, sess)
	if err != nil {
		return sess, desktop.KindUndefined, err
	}
	return sess, d, nil
}

func (s *Screenshoter) detectSession(ctx context.Context) (session.Kind, error) {
	if override := strings.TrimSpace(s.Config.SessionOverride); override != "" {
		sess := session.ParseKind(override)
		if sess == session.KindUndefined {
			return session.KindUndefined, fmt.Errorf("unknown session kind in session_override: '%s'", override)
		}
		logger.Debugf(ctx, "session kind is overridden to %s", sess)
		return sess, nil
	}
	sess := session.Detect(s.LookupEnv)
	logger.Debugf(ctx, "detected session kind: %s", sess)
	return sess, nil
}

func CaptureArea(ctx context.Context, destination string, freeze bool) error {
	return New(config.Default()).CaptureArea(ctx, destination, freeze)
}

func CaptureWindow(ctx context.Context, destination string) error {
	return New(config.Default()).CaptureWindow(ctx, destination)
}

func CaptureFull(ctx context.Context, destination string) error {
	return New(config.Default()).CaptureFull(ctx, destination)
}
