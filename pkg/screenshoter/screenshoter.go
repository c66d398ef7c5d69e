// Package screenshoter takes screenshots periodically.
package screenshoter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot"
)

const TimestampFormat = "20060102-150405.000"

type ScreenshotEngine interface {
	Capture(ctx context.Context, kind screenshot.Kind, destination string, freeze bool) error
}

type Screenshoter struct {
	ScreenshotEngine ScreenshotEngine

	// Kind is screenshot.KindFull unless changed; an area selection is
	// requested from the user on every tick.
	Kind screenshot.Kind
	Now  func() time.Time
}

var _ ScreenshotEngine = (*screenshot.Screenshoter)(nil)

func New(engine ScreenshotEngine) *Screenshoter {
	return &Screenshoter{
		ScreenshotEngine: engine,
		Kind:             screenshot.KindFull,
		Now:              time.Now,
	}
}

// Loop takes a screenshot every interval until ctx is cancelled.
//
// If the file name in destinationPattern contains an integer verb
// (e.g. "shot-%04d.png"), it is formatted with the sequence number of the
// screenshot (starting from 0). Otherwise a timestamp is inserted before
// the file extension. "%%" is a literal percent sign; the directory part is
// never formatted.
// Failed captures are logged and skipped.
func (s *Screenshoter) Loop(
	ctx context.Context,
	interval time.Duration,
	destinationPattern string,
	callback func(ctx context.Context, destination string),
) error {
	pattern, err := parseDestinationPattern(destinationPattern)
	if err != nil {
		return fmt.Errorf("invalid destination pattern '%s': %w", destinationPattern, err)
	}

	t := time.NewTicker(interval)
	defer t.Stop()
	for n := uint64(0); ; {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		destination := s.destination(pattern, n)
		err := s.ScreenshotEngine.Capture(ctx, s.Kind, destination, false)
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Debugf(ctx, "the capture into '%s' was interrupted: %v", destination, err)
			return ctxErr
		}
		if err != nil {
			logger.Errorf(ctx, "unable to take a screenshot: %v", err)
			continue
		}
		n++
		callback(ctx, destination)
	}
}

func (s *Screenshoter) destination(pattern destinationPattern, n uint64) string {
	if pattern.HasVerb {
		return pattern.Dir + fmt.Sprintf(pattern.FileName, n)
	}
	fileName := strings.ReplaceAll(pattern.FileName, "%%", "%")
	ext := filepath.Ext(fileName)
	return pattern.Dir + strings.TrimSuffix(fileName, ext) + "-" + s.Now().Format(TimestampFormat) + ext
}
