package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/screenshotctl/pkg/config"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshot"
	"github.com/xaionaro-go/screenshotctl/pkg/screenshoter"
	"github.com/xaionaro-go/screenshotctl/pkg/xpath"
)

var (
	// Access these variables only from a main package:

	Root = &cobra.Command{
		Use: os.Args[0],
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := initContext(cmd)
			cmd.SetContext(ctx)
			logger.Debugf(ctx, "log-level: %v", LoggerLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			logger.Debug(ctx, "end")
			belt.Flush(ctx)
		},
	}

	Area = &cobra.Command{
		Use:   "area <destination>",
		Short: "select a region of the screen and save it",
		Args:  cobra.ExactArgs(1),
		Run:   area,
	}

	Window = &cobra.Command{
		Use:   "window <destination>",
		Short: "save the active window",
		Args:  cobra.ExactArgs(1),
		Run:   window,
	}

	Full = &cobra.Command{
		Use:   "full <destination>",
		Short: "save the whole screen",
		Args:  cobra.ExactArgs(1),
		Run:   full,
	}

	Detect = &cobra.Command{
		Use:   "detect",
		Short: "print the detected session, desktop and tools without capturing anything",
		Args:  cobra.ExactArgs(0),
		Run:   detect,
	}

	Loop = &cobra.Command{
		Use:   "loop <destination-pattern>",
		Short: "take screenshots periodically; the pattern may contain a verb for the sequence number (e.g. 'shot-%04d.png')",
		Args:  cobra.ExactArgs(1),
		Run:   loop,
	}

	Config = &cobra.Command{
		Use:   "config",
		Short: "print the effective config (the file is created with the defaults if it does not exist)",
		Args:  cobra.ExactArgs(0),
		Run:   printConfig,
	}

	LoggerLevel = logger.LevelWarning
	LoopKind    = screenshot.KindFull
)

func init() {
	Root.PersistentFlags().Var(&LoggerLevel, "log-level", "")
	Root.PersistentFlags().String("log-file", "", "also write the logs to this file")
	Root.PersistentFlags().String("sentry-dsn", "", "report errors to this Sentry DSN")
	addConfigFlags(Root.PersistentFlags())

	Area.Flags().Bool("freeze", false, "show a frozen image of the screen during the selection")

	Loop.Flags().Var(&LoopKind, "kind", "area, window or full")
	Loop.Flags().Duration("interval", 5*time.Second, "the interval between screenshots")

	Root.AddCommand(Area)
	Root.AddCommand(Window)
	Root.AddCommand(Full)
	Root.AddCommand(Detect)
	Root.AddCommand(Loop)
	Root.AddCommand(Config)
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", config.DefaultConfigPath, "the path to the config file")
	flags.Bool("strict", false, "treat non-zero exit codes of the screenshot tools as errors")
}

// Execute runs the command selected by os.Args and aborts the process on failure.
func Execute(ctx context.Context) {
	err := Root.ExecuteContext(ctx)
	assertNoError(ctx, err)
}

func assertNoError(ctx context.Context, err error) {
	if err != nil {
		logger.Fatal(ctx, err)
	}
}

func getConfigPath(cmd *cobra.Command) string {
	cfgPathRaw, err := cmd.Flags().GetString("config")
	if err != nil {
		logger.Panic(cmd.Context(), err)
	}

	cfgPath, err := xpath.Expand(cfgPathRaw)
	assertNoError(cmd.Context(), err)
	return cfgPath
}

// loadConfig reads the config file if it exists; captures never create it.
func loadConfig(cmd *cobra.Command) config.Config {
	ctx := cmd.Context()
	cfgPath := getConfigPath(cmd)

	cfg := config.Default()
	_, err := os.Stat(cfgPath)
	switch {
	case err == nil:
		err := config.ReadConfigFromPath(ctx, cfgPath, &cfg)
		assertNoError(ctx, err)
	case os.IsNotExist(err):
		logger.Debugf(ctx, "config file '%s' does not exist, using the defaults", cfgPath)
	default:
		logger.Warnf(ctx, "unable to access the config file '%s': %v", cfgPath, err)
	}
	return applyFlags(cmd, cfg)
}

func applyFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	ctx := cmd.Context()

	strict, err := cmd.Flags().GetBool("strict")
	assertNoError(ctx, err)
	if strict {
		cfg.StrictExitStatus = true
	}

	if cfg.TempDir != "" {
		cfg.TempDir, err = xpath.Expand(cfg.TempDir)
		assertNoError(ctx, err)
	}
	return cfg
}

func newScreenshoter(cmd *cobra.Command) *screenshot.Screenshoter {
	return screenshot.New(loadConfig(cmd))
}

func destination(cmd *cobra.Command, raw string) string {
	dest, err := xpath.Expand(raw)
	assertNoError(cmd.Context(), err)
	return dest
}

func area(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	freeze, err := cmd.Flags().GetBool("freeze")
	assertNoError(ctx, err)

	err = newScreenshoter(cmd).CaptureArea(ctx, destination(cmd, args[0]), freeze)
	assertNoError(ctx, err)
}

func window(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	err := newScreenshoter(cmd).CaptureWindow(ctx, destination(cmd, args[0]))
	assertNoError(ctx, err)
}

func full(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	err := newScreenshoter(cmd).CaptureFull(ctx, destination(cmd, args[0]))
	assertNoError(ctx, err)
}

func detect(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)
	sess, d, err := screenshot.New(cfg).Detect(ctx)
	assertNoError(ctx, err)

	fmt.Printf("session: %s\n", sess)
	fmt.Printf("desktop: %s\n", d)
	tools := cfg.Tools.WithDefaults()
	for _, tool := range []string{
		tools.Grim,
		tools.Slurp,
		tools.Spectacle,
		tools.GnomeScreenshot,
		tools.Scrot,
		tools.Feh,
		tools.ScreenCapture,
	} {
		toolPath, err := xpath.LookupTool(tool)
		if err != nil {
			fmt.Printf("tool %s: not found\n", tool)
			continue
		}
		fmt.Printf("tool %s: %s\n", tool, toolPath)
	}
}

func loop(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	interval, err := cmd.Flags().GetDuration("interval")
	assertNoError(ctx, err)

	ctx, cancelFn := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancelFn()

	h := screenshoter.New(newScreenshoter(cmd))
	h.Kind = LoopKind
	err = h.Loop(ctx, interval, destination(cmd, args[0]), func(ctx context.Context, destination string) {
		fmt.Println(destination)
	})
	if errors.Is(err, context.Canceled) {
		logger.Debugf(ctx, "interrupted")
		return
	}
	assertNoError(ctx, err)
}

func printConfig(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	cfg, err := config.ReadOrCreateConfigFile(ctx, getConfigPath(cmd))
	assertNoError(ctx, err)

	_, err = cfg.WriteTo(os.Stdout)
	assertNoError(ctx, err)
}
