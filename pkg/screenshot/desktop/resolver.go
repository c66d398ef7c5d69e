package desktop

import (
	"context"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/screenshotctl/pkg/command"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/session"
)

type candidate struct {
	Tool    string
	Desktop Kind
}

// Resolver picks the desktop kind by probing the candidate tools of a session
// in a fixed priority order. Nothing is cached: every call probes again.
type Resolver struct {
	Runner       command.Runner
	Tools        config.Tools
	ProbeMode    config.ProbeMode
	ProbeTimeout time.Duration
}

func NewResolver(
	runner command.Runner,
	cfg config.Config,
) *Resolver {
	return &Resolver{
		Runner:       runner,
		Tools:        cfg.Tools.WithDefaults(),
		ProbeMode:    cfg.Probe.Mode,
		ProbeTimeout: cfg.Probe.Timeout,
	}
}

func (r *Resolver) candidates(s session.Kind) []candidate {
	switch s {
	case session.KindWayland:
		return []candidate{
			{Tool: r.Tools.Grim, Desktop: KindSway},
			{Tool: r.Tools.Spectacle, Desktop: KindKDE},
			{Tool: r.Tools.GnomeScreenshot, Desktop: KindGNOME},
		}
	case session.KindX11:
		return []candidate{
			{Tool: r.Tools.Spectacle, Desktop: KindKDE},
			{Tool: r.Tools.GnomeScreenshot, Desktop: KindGNOME},
			{Tool: r.Tools.Scrot, Desktop: KindGeneric},
		}
	default:
		return nil
	}
}

func (r *Resolver) Resolve(
	ctx context.Context,
	s session.Kind,
) (_ret Kind, _err error) {
	logger.Debugf(ctx, "Resolve(ctx, %s)", s)
	defer func() { logger.Debugf(ctx, "/Resolve(ctx, %s): %s %v", s, _ret, _err) }()

	switch s {
	case session.KindMacos:
		return KindMacos, nil
	case session.KindWayland, session.KindX11:
	default:
		return KindUndefined, ErrUnknownSession{Session: s}
	}

	var tried []string
	for _, c := range r.candidates(s) {
		tried = append(tried, c.Tool)
		if Probe(ctx, r.Runner, r.ProbeMode, r.ProbeTimeout, c.Tool) {
			return c.Desktop, nil
		}
	}
	return KindUndefined, ErrNoCompatibleTool{
		Session: s,
		Tried:   tried,
	}
}
