package strategy

import (
	"context"

	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

// GNOME uses gnome-screenshot.
type GNOME struct {
	base
}

var _ Strategy = GNOME{}

func (s GNOME) Capture(
	ctx context.Context,
	kind types.Kind,
	destination string,
	freeze bool,
) error {
	tool := s.Tools.GnomeScreenshot
	switch kind {
	case types.KindArea:
		return s.withFrozenBackdrop(
			ctx,
			freeze,
			func(tmpPath string) error {
				_, err := s.run(ctx, tool, "-f", tmpPath)
				return err
			},
			func() error {
				return s.capture(ctx, destination, tool, "-a", "-f", destination)
			},
		)
	case types.KindWindow:
		return s.capture(ctx, destination, tool, "-w", "-e", "shadow", "-f", destination)
	case types.KindFull:
		return s.capture(ctx, destination, tool, "-f", destination)
	default:
		return ErrUnknownKind{Kind: kind}
	}
}
