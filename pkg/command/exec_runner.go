package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	child_process_manager "github.com/AgustinSRG/go-child-process-manager"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/shirou/gopsutil/process"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/screenshotctl/pkg/logwriter"
)

// WaitDelay is how long Run waits for the stdio of a cancelled tool
// to be released (e.g. by its forked helpers) before giving up on it.
const WaitDelay = time.Second

// ExecRunner runs real processes using os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(
	ctx context.Context,
	name string,
	args ...string,
) Result {
	logger.Tracef(ctx, "running '%s %s'", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = WaitDelay
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	stderr := newStderrWriter(ctx, name)
	defer stderr.Flush()
	cmd.Stderr = stderr
	bindToParent(ctx, cmd)

	if err := cmd.Start(); err != nil {
		logger.Debugf(ctx, "unable to start '%s': %v", name, err)
		return Result{
			Outcome:  OutcomeSpawnFailed,
			ExitCode: -1,
			Err:      err,
		}
	}
	registerChild(ctx, cmd.Process)

	err := cmd.Wait()
	r := resultFromWait(err)
	r.Stdout = stdout.Bytes()
	logger.Tracef(ctx, "'%s' finished: %s (exit code %d)", name, r.Outcome, r.ExitCode)
	return r
}

func resultFromWait(err error) Result {
	if err == nil {
		return Result{
			Outcome: OutcomeSucceeded,
		}
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return Result{
		Outcome:  OutcomeExitedNonZero,
		ExitCode: exitCode,
		Err:      err,
	}
}

func (ExecRunner) Start(
	ctx context.Context,
	lifetime Lifetime,
	name string,
	args ...string,
) (Process, error) {
	logger.Tracef(ctx, "starting '%s %s' (lifetime: %s)", name, strings.Join(args, " "), lifetime)

	// not exec.CommandContext: the process is allowed to outlive the call
	cmd := exec.Command(name, args...)
	var stderr *logwriter.LogWriter
	switch lifetime {
	case LifetimeBoundToParent:
		stderr = newStderrWriter(ctx, name)
		cmd.Stderr = stderr
		bindToParent(ctx, cmd)
	case LifetimeIndependent:
		// stdio stays detached, so the process does not die on a broken pipe after we exit
		detachFromTerminal(cmd)
	default:
		return nil, fmt.Errorf("unexpected lifetime: %s", lifetime)
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	if lifetime == LifetimeBoundToParent {
		registerChild(ctx, cmd.Process)
	}

	p := &execProcess{
		Cmd:    cmd,
		DoneCh: make(chan struct{}),
	}
	observability.Go(ctx, func(ctx context.Context) {
		defer close(p.DoneCh)
		err := cmd.Wait()
		if stderr != nil {
			stderr.Flush()
		}
		logger.Debugf(ctx, "'%s' (PID %d) exited: %v", name, cmd.Process.Pid, err)
	})
	return p, nil
}

func newStderrWriter(ctx context.Context, name string) *logwriter.LogWriter {
	return logwriter.NewLogWriter(
		logger.FromCtx(ctx).
			WithField("tool", name).
			WithField("output_type", "stderr"),
		logger.LevelDebug,
	)
}

func bindToParent(ctx context.Context, cmd *exec.Cmd) {
	err := child_process_manager.ConfigureCommand(cmd)
	if err != nil {
		logger.Errorf(ctx, "unable to configure the command so that the process will die automatically: %v", err)
	}
}

func registerChild(ctx context.Context, proc *os.Process) {
	err := child_process_manager.AddChildProcess(proc)
	if err == nil {
		return
	}
	if runtime.GOOS == "windows" {
		// happens when the child process manager was not initialized by the main package
		logger.Debugf(ctx, "unable to register the command to be auto-killed: %v", err)
	} else {
		logger.Errorf(ctx, "unable to register the command to be auto-killed: %v", err)
	}
}

type execProcess struct {
	Cmd    *exec.Cmd
	DoneCh chan struct{}
}

var _ Process = (*execProcess)(nil)

func (p *execProcess) PID() int {
	return p.Cmd.Process.Pid
}

func (p *execProcess) Kill() error {
	return p.Cmd.Process.Kill()
}

func (p *execProcess) Done() <-chan struct{} {
	return p.DoneCh
}

func (p *execProcess) IsRunning(ctx context.Context) (bool, error) {
	select {
	case <-p.DoneCh:
		return false, nil
	default:
	}
	exists, err := process.PidExistsWithContext(ctx, int32(p.PID()))
	if err != nil {
		return false, fmt.Errorf("unable to check if PID %d exists: %w", p.PID(), err)
	}
	return exists, nil
}
