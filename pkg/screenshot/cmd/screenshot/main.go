package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot"
)

func main() {
	kind := screenshot.KindFull
	flag.Var(&kind, "kind", "area, window or full")
	freeze := flag.Bool("freeze", false, "freeze the screen during the area selection")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <destination.png>\n", os.Args[0])
		os.Exit(2)
	}

	l := logrus.Default().WithLevel(logger.LevelDebug)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	err := screenshot.New(config.Default()).Capture(ctx, kind, flag.Arg(0), *freeze)
	assertNoError(err)
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
