package desktop

import (
	"fmt"
	"strings"

	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/session"
)

// ErrNoCompatibleTool means none of the candidate tools for the session is installed.
type ErrNoCompatibleTool struct {
	Session session.Kind
	Tried   []string
}

var _ error = ErrNoCompatibleTool{}

func (e ErrNoCompatibleTool) Error() string {
	switch e.Session {
	case session.KindWayland:
		return fmt.Sprintf("incompatible Wayland desktop (tried: %s)", strings.Join(e.Tried, ", "))
	case session.KindX11:
		return fmt.Sprintf("incompatible X11 desktop (install scrot; tried: %s)", strings.Join(e.Tried, ", "))
	default:
		return fmt.Sprintf("no compatible screenshot tool for session '%s'", e.Session)
	}
}

type ErrUnknownSession struct {
	Session session.Kind
}

var _ error = ErrUnknownSession{}

func (e ErrUnknownSession) Error() string {
	return fmt.Sprintf("unknown session kind '%s'", e.Session)
}
