package strategy

import (
	"context"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

// Sway uses grim, with the region selected by slurp.
type Sway struct {
	base
}

var _ Strategy = Sway{}

func (s Sway) Capture(
	ctx context.Context,
	kind types.Kind,
	destination string,
	_ bool,
) error {
	switch kind {
	case types.KindArea, types.KindWindow:
		// there is no notion of the active window without compositor-specific IPC,
		// so a window is selected the same way as an area
		return s.captureSelection(ctx, destination)
	case types.KindFull:
		return s.capture(ctx, destination, s.Tools.Grim, destination)
	default:
		return ErrUnknownKind{Kind: kind}
	}
}

func (s Sway) captureSelection(
	ctx context.Context,
	destination string,
) error {
	stdout, err := s.run(ctx, s.Tools.Slurp)
	if err != nil {
		return err
	}
	geometry := strings.TrimSpace(string(stdout))
	if geometry == "" {
		if s.StrictExitStatus {
			return ErrNoSelection{}
		}
		logger.Warnf(ctx, "'%s' returned an empty geometry", s.Tools.Slurp)
	}
	return s.capture(ctx, destination, s.Tools.Grim, "-g", geometry, destination)
}
