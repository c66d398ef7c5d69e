// Package commandmock provides a recording command.Runner for tests.
package commandmock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/xaionaro-go/screenshotctl/pkg/command"
)

type Invocation struct {
	Name     string
	Args     []string
	Started  bool
	Lifetime command.Lifetime
}

// CommandLine returns the program name followed by its arguments.
func (inv Invocation) CommandLine() []string {
	return append([]string{inv.Name}, inv.Args...)
}

// IsProbe reports whether the invocation is a "--version" presence probe.
func (inv Invocation) IsProbe() bool {
	return len(inv.Args) == 1 && inv.Args[0] == "--version"
}

// Runner records every invocation instead of executing it.
//
// All programs are considered installed and successful unless configured otherwise.
type Runner struct {
	Locker      sync.Mutex
	Invocations []Invocation
	Processes   []*Process

	// Available, if not nil, is the exhaustive set of installed programs.
	Available map[string]struct{}
	Missing   map[string]struct{}
	ExitCodes map[string]int
	Stdout    map[string][]byte

	// Blocking programs run until ctx is cancelled and then report being
	// killed, the way exec.CommandContext does.
	Blocking map[string]struct{}

	// OnRun is called (outside of the lock) for every successfully spawned invocation.
	OnRun func(inv Invocation)

	nextPID int
}

var _ command.Runner = (*Runner)(nil)

func NewRunner() *Runner {
	return &Runner{
		Missing:   map[string]struct{}{},
		ExitCodes: map[string]int{},
		Stdout:    map[string][]byte{},
		Blocking:  map[string]struct{}{},
		nextPID:   1000,
	}
}

// WithOnlyAvailable makes every program except the listed ones fail to spawn.
func (r *Runner) WithOnlyAvailable(names ...string) *Runner {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	r.Available = map[string]struct{}{}
	for _, name := range names {
		r.Available[name] = struct{}{}
	}
	return r
}

func (r *Runner) WithMissing(names ...string) *Runner {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	for _, name := range names {
		r.Missing[name] = struct{}{}
	}
	return r
}

func (r *Runner) WithExitCode(name string, exitCode int) *Runner {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	r.ExitCodes[name] = exitCode
	return r
}

func (r *Runner) WithStdout(name string, stdout string) *Runner {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	r.Stdout[name] = []byte(stdout)
	return r
}

func (r *Runner) WithBlocking(names ...string) *Runner {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	for _, name := range names {
		r.Blocking[name] = struct{}{}
	}
	return r
}

func (r *Runner) WithOnRun(fn func(inv Invocation)) *Runner {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	r.OnRun = fn
	return r
}

func (r *Runner) isInstalledNoLock(name string) bool {
	if _, ok := r.Missing[name]; ok {
		return false
	}
	if r.Available == nil {
		return true
	}
	_, ok := r.Available[name]
	return ok
}

func (r *Runner) Run(
	ctx context.Context,
	name string,
	args ...string,
) command.Result {
	inv := Invocation{
		Name: name,
		Args: append([]string{}, args...),
	}

	r.Locker.Lock()
	r.Invocations = append(r.Invocations, inv)
	if !r.isInstalledNoLock(name) {
		r.Locker.Unlock()
		return command.Result{
			Outcome:  command.OutcomeSpawnFailed,
			ExitCode: -1,
			Err:      &exec.Error{Name: name, Err: exec.ErrNotFound},
		}
	}
	exitCode := r.ExitCodes[name]
	stdout := r.Stdout[name]
	_, isBlocking := r.Blocking[name]
	onRun := r.OnRun
	r.Locker.Unlock()

	if isBlocking && !inv.IsProbe() {
		<-ctx.Done()
		return command.Result{
			Outcome:  command.OutcomeExitedNonZero,
			ExitCode: -1,
			Err:      errors.New("signal: killed"),
		}
	}

	if onRun != nil {
		onRun(inv)
	}

	if exitCode != 0 {
		return command.Result{
			Outcome:  command.OutcomeExitedNonZero,
			ExitCode: exitCode,
			Stdout:   stdout,
			Err:      fmt.Errorf("exit status %d", exitCode),
		}
	}
	return command.Result{
		Outcome: command.OutcomeSucceeded,
		Stdout:  stdout,
	}
}

func (r *Runner) Start(
	ctx context.Context,
	lifetime command.Lifetime,
	name string,
	args ...string,
) (command.Process, error) {
	inv := Invocation{
		Name:     name,
		Args:     append([]string{}, args...),
		Started:  true,
		Lifetime: lifetime,
	}

	r.Locker.Lock()
	r.Invocations = append(r.Invocations, inv)
	if !r.isInstalledNoLock(name) {
		r.Locker.Unlock()
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	r.nextPID++
	p := newProcess(inv, r.nextPID)
	r.Processes = append(r.Processes, p)
	onRun := r.OnRun
	r.Locker.Unlock()

	if onRun != nil {
		onRun(inv)
	}
	return p, nil
}

// Calls returns a copy of the recorded invocations, optionally without the presence probes.
func (r *Runner) Calls(withProbes bool) []Invocation {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	result := make([]Invocation, 0, len(r.Invocations))
	for _, inv := range r.Invocations {
		if !withProbes && inv.IsProbe() {
			continue
		}
		result = append(result, inv)
	}
	return result
}

// CommandLines is Calls(false) converted to plain argv slices.
func (r *Runner) CommandLines() [][]string {
	var result [][]string
	for _, inv := range r.Calls(false) {
		result = append(result, inv.CommandLine())
	}
	return result
}

// StartedProcesses returns the processes started with the given program name,
// not counting the presence probes.
func (r *Runner) StartedProcesses(name string) []*Process {
	r.Locker.Lock()
	defer r.Locker.Unlock()
	var result []*Process
	for _, p := range r.Processes {
		if p.Invocation.Name == name && !p.Invocation.IsProbe() {
			result = append(result, p)
		}
	}
	return result
}

// WriteLastArgument is an OnRun hook that creates a small file at the path
// passed as the last argument, mimicking a screenshot tool.
func WriteLastArgument(inv Invocation) {
	if inv.IsProbe() || len(inv.Args) == 0 {
		return
	}
	path := inv.Args[len(inv.Args)-1]
	if len(path) == 0 || path[0] == '-' {
		return
	}
	_ = os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0644)
}
