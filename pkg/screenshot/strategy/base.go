package strategy

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt/tool/experimental/errmon"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/screenshotctl/pkg/command"
)

type base struct {
	Params
}

// run executes the tool and applies the outcome policy: a spawn failure is
// an error, a non-zero exit is a warning unless StrictExitStatus is set.
// A cancelled ctx is always an error, whatever the tool reported.
func (b base) run(
	ctx context.Context,
	tool string,
	args ...string,
) ([]byte, error) {
	logger.Debugf(ctx, "running '%s %s'", tool, strings.Join(args, " "))
	r := b.Runner.Run(ctx, tool, args...)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("'%s' was interrupted: %w", tool, err)
	}
	switch r.Outcome {
	case command.OutcomeSucceeded:
		return r.Stdout, nil
	case command.OutcomeExitedNonZero:
		if b.StrictExitStatus {
			return r.Stdout, ErrToolExited{Tool: tool, ExitCode: r.ExitCode}
		}
		logger.Warnf(ctx, "'%s %s' exited with code %d: %v", tool, strings.Join(args, " "), r.ExitCode, r.Err)
		return r.Stdout, nil
	default:
		errmon.ObserveErrorCtx(ctx, r.Err)
		return nil, ErrToolLaunch{Tool: tool, Err: r.Err}
	}
}

// capture runs the tool and then checks that something was written to destination.
func (b base) capture(
	ctx context.Context,
	destination string,
	tool string,
	args ...string,
) error {
	if _, err := b.run(ctx, tool, args...); err != nil {
		return err
	}
	return b.checkOutput(ctx, destination)
}

func (b base) checkOutput(
	ctx context.Context,
	destination string,
) error {
	stat, err := os.Stat(destination)
	switch {
	case err != nil:
		logger.Warnf(ctx, "the screenshot tool produced no usable output at '%s': %v", destination, err)
	case stat.Size() == 0:
		logger.Warnf(ctx, "the screenshot tool produced an empty file '%s'", destination)
	default:
		logger.Debugf(ctx, "captured %s into '%s'", humanize.Bytes(uint64(stat.Size())), destination)
		return nil
	}
	if b.StrictExitStatus {
		return ErrNoOutput{Path: destination}
	}
	return nil
}
