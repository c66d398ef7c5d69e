//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd,!dragonfly

package command

import (
	"os/exec"
)

func detachFromTerminal(cmd *exec.Cmd) {}
