package strategy

import (
	"fmt"

	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/desktop"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/types"
)

// ErrToolLaunch means the external tool could not be started at all.
type ErrToolLaunch struct {
	Tool string
	Err  error
}

var _ error = ErrToolLaunch{}

func (e ErrToolLaunch) Error() string {
	return fmt.Sprintf("'%s' did not launch: %v", e.Tool, e.Err)
}

func (e ErrToolLaunch) Unwrap() error {
	return e.Err
}

// ErrToolExited is returned only in the strict exit status mode.
type ErrToolExited struct {
	Tool     string
	ExitCode int
}

var _ error = ErrToolExited{}

func (e ErrToolExited) Error() string {
	return fmt.Sprintf("'%s' exited with code %d", e.Tool, e.ExitCode)
}

// ErrNoOutput is returned only in the strict exit status mode.
type ErrNoOutput struct {
	Path string
}

var _ error = ErrNoOutput{}

func (e ErrNoOutput) Error() string {
	return fmt.Sprintf("no screenshot was written to '%s'", e.Path)
}

// ErrNoSelection is returned only in the strict exit status mode.
type ErrNoSelection struct{}

var _ error = ErrNoSelection{}

func (ErrNoSelection) Error() string { return "no region was selected" }

type ErrUnknownDesktop struct {
	Desktop desktop.Kind
}

var _ error = ErrUnknownDesktop{}

func (e ErrUnknownDesktop) Error() string {
	return fmt.Sprintf("unknown desktop kind '%s'", e.Desktop)
}

type ErrUnknownKind struct {
	Kind types.Kind
}

var _ error = ErrUnknownKind{}

func (e ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown screenshot kind '%s'", e.Kind)
}
