package commands

import (
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/facebookincubator/go-belt"
	xruntime "github.com/facebookincubator/go-belt/pkg/runtime"
	"github.com/facebookincubator/go-belt/tool/experimental/errmon"
	errmonsentry "github.com/facebookincubator/go-belt/tool/experimental/errmon/implementation/sentry"
	"github.com/facebookincubator/go-belt/tool/logger"
	xlogrus "github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/screenshotctl/pkg/xpath"
)

const programName = "screenshotctl"

var originalPCFilter xruntime.PCFilter

func init() {
	originalPCFilter = xruntime.DefaultCallerPCFilter
}

// setDefaultCallerPCFilter makes log entries point to the code that
// caused them instead of the stderr forwarder.
func setDefaultCallerPCFilter() {
	xruntime.DefaultCallerPCFilter = func(pc uintptr) bool {
		if !originalPCFilter(pc) {
			return false
		}
		fn := runtime.FuncForPC(pc)
		if strings.Contains(fn.Name(), "pkg/logwriter") {
			return false
		}
		return true
	}
}

func newLogger(
	cmd *cobra.Command,
	level logger.Level,
) logger.Logger {
	ll := xlogrus.DefaultLogrusLogger()
	if f, ok := ll.Formatter.(*logrus.TextFormatter); ok {
		f.ForceColors = true
	}

	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		logger.Panic(cmd.Context(), err)
	}
	if logFile != "" {
		logPath, err := xpath.Expand(logFile)
		if err != nil {
			logger.Panicf(cmd.Context(), "unable to expand path '%s': %v", logFile, err)
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0640)
		if err != nil {
			logger.Panicf(cmd.Context(), "failed to open log file '%s': %v", logPath, err)
		}
		ll.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	logrus.SetLevel(xlogrus.LevelToLogrus(level))
	return xlogrus.New(ll).WithLevel(level)
}

func initContext(
	cmd *cobra.Command,
) context.Context {
	ctx := cmd.Context()
	setDefaultCallerPCFilter()

	l := newLogger(cmd, LoggerLevel)
	ctx = logger.CtxWithLogger(ctx, l)

	sentryDSN, err := cmd.Flags().GetString("sentry-dsn")
	if err != nil {
		logger.Panic(ctx, err)
	}
	if sentryDSN != "" {
		logger.Infof(ctx, "setting up Sentry at DSN '%s'", sentryDSN)
		sentryClient, err := sentry.NewClient(sentry.ClientOptions{
			Dsn: sentryDSN,
		})
		if err != nil {
			logger.Fatal(ctx, err)
		}
		ctx = errmon.CtxWithErrorMonitor(ctx, errmonsentry.New(sentryClient))
	}

	ctx = belt.WithField(ctx, "program", programName)
	ctx = belt.WithField(ctx, "pid", os.Getpid())

	l = logger.FromCtx(ctx)
	logger.Default = func() logger.Logger {
		return l
	}
	return ctx
}
