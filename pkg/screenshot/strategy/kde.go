package strategy

import (
	"context"

	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

// KDE uses spectacle in the background mode without notifications.
type KDE struct {
	base
}

var _ Strategy = KDE{}

func (s KDE) Capture(
	ctx context.Context,
	kind types.Kind,
	destination string,
	_ bool,
) error {
	var flags string
	switch kind {
	case types.KindArea:
		flags = "-rbno"
	case types.KindWindow:
		flags = "-abno"
	case types.KindFull:
		flags = "-fbno"
	default:
		return ErrUnknownKind{Kind: kind}
	}
	return s.capture(ctx, destination, s.Tools.Spectacle, flags, destination)
}
