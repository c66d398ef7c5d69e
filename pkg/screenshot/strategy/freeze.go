package strategy

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/screenshotctl/pkg/command"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot/desktop"
	"github.com/xaionaro-go/xsync"
)

// legacySelectionLocker serializes the captures sharing the fixed
// LegacySelectionFileName within this process.
var legacySelectionLocker xsync.Mutex

// withFrozenBackdrop shows a full screen image of the current screen
// while the interactive selection runs, so the screen looks frozen.
//
// If the viewer is not installed, the selection runs without a backdrop.
// Without freeze the viewer and the staged image are left in place after
// a successful capture; on errors they are always cleaned up.
func (b base) withFrozenBackdrop(
	ctx context.Context,
	freeze bool,
	stage func(tmpPath string) error,
	selectAndCapture func() error,
) error {
	if !b.LegacyFixedPath {
		return b.withFrozenBackdropNoLock(ctx, freeze, stage, selectAndCapture)
	}
	return xsync.DoR1(ctx, &legacySelectionLocker, func() error {
		return b.withFrozenBackdropNoLock(ctx, freeze, stage, selectAndCapture)
	})
}

func (b base) withFrozenBackdropNoLock(
	ctx context.Context,
	freeze bool,
	stage func(tmpPath string) error,
	selectAndCapture func() error,
) error {
	viewerTool := b.Tools.Feh
	if !desktop.Probe(ctx, b.Runner, b.ProbeMode, b.ProbeTimeout, viewerTool) {
		logger.Debugf(ctx, "'%s' is not available, the screen will not be frozen during the selection", viewerTool)
		return selectAndCapture()
	}

	tmpPath := b.SelectionFilePath()
	logger.Debugf(ctx, "staging the backdrop image at '%s'", tmpPath)
	if err := stage(tmpPath); err != nil {
		b.cleanupBackdrop(ctx, tmpPath, nil)
		return fmt.Errorf("unable to stage the backdrop image: %w", err)
	}

	lifetime := command.LifetimeIndependent
	if freeze {
		lifetime = command.LifetimeBoundToParent
	}
	viewer, err := b.Runner.Start(ctx, lifetime, viewerTool, tmpPath, "-F")
	if err != nil {
		b.cleanupBackdrop(ctx, tmpPath, nil)
		return ErrToolLaunch{Tool: viewerTool, Err: err}
	}

	err = selectAndCapture()
	if err != nil || freeze {
		b.cleanupBackdrop(ctx, tmpPath, viewer)
		return err
	}

	logger.Debugf(ctx, "leaving the viewer (PID %d) and the backdrop image '%s' in place", viewer.PID(), tmpPath)
	return nil
}

// cleanupBackdrop is best-effort: failures are only logged.
func (b base) cleanupBackdrop(
	ctx context.Context,
	tmpPath string,
	viewer command.Process,
) {
	var mErr *multierror.Error

	err := os.Remove(tmpPath)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		logger.Debugf(ctx, "the backdrop image '%s' does not exist", tmpPath)
	default:
		mErr = multierror.Append(mErr, fmt.Errorf("unable to remove the temporary selection file '%s': %w", tmpPath, err))
	}

	if viewer != nil {
		mErr = multierror.Append(mErr, stopViewer(ctx, viewer))
	}

	if err := mErr.ErrorOrNil(); err != nil {
		logger.Warnf(ctx, "unable to clean up after the screen freeze: %v", err)
	}
}

func stopViewer(
	ctx context.Context,
	viewer command.Process,
) error {
	isRunning, err := viewer.IsRunning(ctx)
	if err != nil {
		logger.Debugf(ctx, "unable to check if the viewer (PID %d) is running: %v", viewer.PID(), err)
		isRunning = true
	}
	if !isRunning {
		logger.Debugf(ctx, "the viewer (PID %d) has already been closed", viewer.PID())
		return nil
	}
	if err := viewer.Kill(); err != nil {
		return fmt.Errorf("unable to kill the viewer (PID %d), must have already been closed: %w", viewer.PID(), err)
	}
	return nil
}
