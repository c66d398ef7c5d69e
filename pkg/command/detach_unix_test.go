//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package command

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecRunnerStartIndependentOwnProcessGroup(t *testing.T) {
	skipIfNoShell(t)
	ctx := context.Background()

	p, err := ExecRunner{}.Start(ctx, LifetimeIndependent, "sleep", "30")
	require.NoError(t, err)
	defer func() {
		_ = p.Kill()
		<-p.Done()
	}()

	childPgid, err := syscall.Getpgid(p.PID())
	require.NoError(t, err)
	require.Equal(t, p.PID(), childPgid)
	require.NotEqual(t, syscall.Getpgrp(), childPgid)

	require.NoError(t, p.Kill())
	select {
	case <-p.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("the process was not reaped after being killed")
	}
}
