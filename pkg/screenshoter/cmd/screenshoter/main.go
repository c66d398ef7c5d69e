package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshoter"
)

func main() {
	interval := flag.Duration("interval", time.Second, "")
	outputPattern := flag.String("output-pattern", "screenshot-%06d.png", "")
	flag.Parse()

	l := logrus.Default().WithLevel(logger.LevelDebug)
	ctx := context.Background()
	ctx = logger.CtxWithLogger(ctx, l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	h := screenshoter.New(screenshot.New(config.Default()))

	startedAt := time.Now()
	frameCount := 0
	logger.Debugf(ctx, "starting the loop with interval %v", *interval)
	err := h.Loop(
		ctx,
		*interval,
		*outputPattern,
		func(_ context.Context, destination string) {
			frameCount++
			fps := float64(frameCount) / time.Since(startedAt).Seconds()
			fmt.Printf("saved '%s'; overall FPS: %f\n", destination, fps)
		},
	)
	assertNoError(err)
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
