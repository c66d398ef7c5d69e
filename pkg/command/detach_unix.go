//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package command

import (
	"os/exec"
	"syscall"
)

// detachFromTerminal moves the process into its own process group,
// so signals sent to the foreground group (e.g. Ctrl-C) do not reach it.
func detachFromTerminal(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}
