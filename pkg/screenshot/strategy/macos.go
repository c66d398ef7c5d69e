package strategy

import (
	"context"

	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

// Macos uses the native screencapture.
type Macos struct {
	base
}

var _ Strategy = Macos{}

func (s Macos) Capture(
	ctx context.Context,
	kind types.Kind,
	destination string,
	_ bool,
) error {
	var flag string
	switch kind {
	case types.KindArea:
		flag = "-s"
	case types.KindWindow:
		flag = "-w"
	case types.KindFull:
		flag = "-S"
	default:
		return ErrUnknownKind{Kind: kind}
	}
	return s.capture(ctx, destination, s.Tools.ScreenCapture, flag, destination)
}
