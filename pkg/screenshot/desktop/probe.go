package desktop

import (
	"context"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/screenshotctl/pkg/command"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
)

const ProbeFlag = "--version"

// Probe reports whether the tool looks installed.
//
// With config.ProbeModeSpawn only the ability to start "<tool> --version"
// is checked, so a spawnable but broken binary counts as present.
// With config.ProbeModeExitStatus the probe must also exit with status 0
// within the timeout.
func Probe(
	ctx context.Context,
	runner command.Runner,
	mode config.ProbeMode,
	timeout time.Duration,
	tool string,
) bool {
	switch mode {
	case config.ProbeModeExitStatus:
		if timeout > 0 {
			var cancelFn context.CancelFunc
			ctx, cancelFn = context.WithTimeout(ctx, timeout)
			defer cancelFn()
		}
		r := runner.Run(ctx, tool, ProbeFlag)
		logger.Tracef(ctx, "probe '%s': %s (exit code %d)", tool, r.Outcome, r.ExitCode)
		return r.Succeeded()
	default:
		_, err := runner.Start(ctx, command.LifetimeBoundToParent, tool, ProbeFlag)
		logger.Tracef(ctx, "probe '%s': %v", tool, err)
		return err == nil
	}
}
