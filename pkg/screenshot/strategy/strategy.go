// Package strategy implements the screenshot invocation conventions of each
// supported desktop.
package strategy

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xaionaro-go/screenshotctl/pkg/command"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/desktop"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

const LegacySelectionFileName = "selection-tmp.png"

type Strategy interface {
	// Capture takes a screenshot of the given kind into destination.
	// freeze is consulted only by strategies that emulate a frozen screen
	// during area selection.
	Capture(ctx context.Context, kind types.Kind, destination string, freeze bool) error
}

type Params struct {
	Runner              command.Runner
	Tools               config.Tools
	TempDir             string
	SelectionFilePrefix string
	LegacyFixedPath     bool
	StrictExitStatus    bool
	ProbeMode           config.ProbeMode
	ProbeTimeout        time.Duration
}

func NewParams(
	runner command.Runner,
	cfg config.Config,
) Params {
	return Params{
		Runner:              runner,
		Tools:               cfg.Tools.WithDefaults(),
		TempDir:             cfg.GetTempDir(),
		SelectionFilePrefix: cfg.SelectionFilePrefix,
		LegacyFixedPath:     cfg.LegacyFixedPath,
		StrictExitStatus:    cfg.StrictExitStatus,
		ProbeMode:           cfg.Probe.Mode,
		ProbeTimeout:        cfg.Probe.Timeout,
	}
}

// SelectionFilePath returns where the freeze backdrop image is staged.
// Unless LegacyFixedPath is set, every call returns a new unique path.
func (p Params) SelectionFilePath() string {
	if p.LegacyFixedPath {
		return filepath.Join(p.TempDir, LegacySelectionFileName)
	}
	return filepath.Join(p.TempDir, p.SelectionFilePrefix+uuid.New().String()+".png")
}

func New(
	d desktop.Kind,
	params Params,
) (Strategy, error) {
	b := base{Params: params}
	switch d {
	case desktop.KindGNOME:
		return GNOME{base: b}, nil
	case desktop.KindKDE:
		return KDE{base: b}, nil
	case desktop.KindSway:
		return Sway{base: b}, nil
	case desktop.KindGeneric:
		return Generic{base: b}, nil
	case desktop.KindMacos:
		return Macos{base: b}, nil
	default:
		return nil, ErrUnknownDesktop{Desktop: d}
	}
}
