package commandmock

import (
	"context"
	"os"
	"sync"

	"github.com/xaionaro-go/screenshotctl/pkg/command"
)

type Process struct {
	Invocation Invocation
	Pid        int

	Locker sync.Mutex
	Killed bool
	Exited bool
	DoneCh chan struct{}
}

var _ command.Process = (*Process)(nil)

func newProcess(inv Invocation, pid int) *Process {
	return &Process{
		Invocation: inv,
		Pid:        pid,
		DoneCh:     make(chan struct{}),
	}
}

func (p *Process) PID() int {
	return p.Pid
}

func (p *Process) Kill() error {
	p.Locker.Lock()
	defer p.Locker.Unlock()
	if p.Exited {
		return os.ErrProcessDone
	}
	p.Killed = true
	p.Exited = true
	close(p.DoneCh)
	return nil
}

// Exit simulates the process exiting on its own.
func (p *Process) Exit() {
	p.Locker.Lock()
	defer p.Locker.Unlock()
	if p.Exited {
		return
	}
	p.Exited = true
	close(p.DoneCh)
}

func (p *Process) Done() <-chan struct{} {
	return p.DoneCh
}

func (p *Process) IsRunning(ctx context.Context) (bool, error) {
	p.Locker.Lock()
	defer p.Locker.Unlock()
	return !p.Exited, nil
}

func (p *Process) WasKilled() bool {
	p.Locker.Lock()
	defer p.Locker.Unlock()
	return p.Killed
}
