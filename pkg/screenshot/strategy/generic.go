package strategy

import (
	"context"

	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

// Generic is the X11 fallback based on scrot.
type Generic struct {
	base
}

var _ Strategy = Generic{}

func (s Generic) Capture(
	ctx context.Context,
	kind types.Kind,
	destination string,
	freeze bool,
) error {
	tool := s.Tools.Scrot
	switch kind {
	case types.KindArea:
		return s.withFrozenBackdrop(
			ctx,
			freeze,
			func(tmpPath string) error {
				_, err := s.run(ctx, tool, tmpPath)
				return err
			},
			func() error {
				return s.capture(ctx, destination, tool, "--select", destination)
			},
		)
	case types.KindWindow:
		return s.capture(ctx, destination, tool, "--border", "--focused", destination)
	case types.KindFull:
		return s.capture(ctx, destination, tool, destination)
	default:
		return ErrUnknownKind{Kind: kind}
	}
}
