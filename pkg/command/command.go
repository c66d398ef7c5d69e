// Package command is a thin layer over external process invocation.
//
// Run reports an Outcome instead of a single error; which outcomes
// are fatal is up to the caller.
package command

import (
	"context"
	"fmt"
)

type Outcome int

const (
	OutcomeUndefined = Outcome(iota)
	OutcomeSpawnFailed
	OutcomeExitedNonZero
	OutcomeSucceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUndefined:
		return "undefined"
	case OutcomeSpawnFailed:
		return "spawn_failed"
	case OutcomeExitedNonZero:
		return "exited_non_zero"
	case OutcomeSucceeded:
		return "succeeded"
	default:
		return fmt.Sprintf("unknown_%d", int(o))
	}
}

type Result struct {
	Outcome  Outcome
	ExitCode int
	Stdout   []byte

	// Err is the spawn error for OutcomeSpawnFailed and the wait error
	// for OutcomeExitedNonZero.
	Err error
}

func (r Result) Spawned() bool {
	return r.Outcome == OutcomeExitedNonZero || r.Outcome == OutcomeSucceeded
}

func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}

// Lifetime defines what happens to a started process when the current process dies.
type Lifetime int

const (
	LifetimeUndefined = Lifetime(iota)

	// LifetimeBoundToParent makes the process die together with the current process.
	LifetimeBoundToParent

	// LifetimeIndependent lets the process outlive the current process.
	// Where supported it also gets its own process group, so a terminal
	// interrupt of the current process does not reach it.
	LifetimeIndependent
)

func (l Lifetime) String() string {
	switch l {
	case LifetimeUndefined:
		return "undefined"
	case LifetimeBoundToParent:
		return "bound_to_parent"
	case LifetimeIndependent:
		return "independent"
	default:
		return fmt.Sprintf("unknown_%d", int(l))
	}
}

type Process interface {
	PID() int
	Kill() error
	Done() <-chan struct{}
	IsRunning(ctx context.Context) (bool, error)
}

type Runner interface {
	// Run starts the program and waits for it to exit, collecting its stdout.
	Run(ctx context.Context, name string, args ...string) Result

	// Start starts the program and returns immediately. The returned error
	// is non-nil only if the process could not be spawned.
	Start(ctx context.Context, lifetime Lifetime, name string, args ...string) (Process, error)
}
