package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
)

const DefaultConfigPath = "~/.config/screenshotctl/config.yaml"

type ProbeMode string

const (
	ProbeModeUndefined = ProbeMode("")

	// ProbeModeSpawn considers a tool present if its "--version" process could be started.
	ProbeModeSpawn = ProbeMode("spawn")

	// ProbeModeExitStatus additionally requires the probe process to exit
	// with status 0 within the probe timeout.
	ProbeModeExitStatus = ProbeMode("exit_status")
)

type ProbeConfig struct {
	Mode    ProbeMode     `yaml:"mode"`
	Timeout time.Duration `yaml:"timeout"`
}

// Tools contains the program names (or paths) of the external tools.
type Tools struct {
	Grim            string `yaml:"grim"`
	Slurp           string `yaml:"slurp"`
	Spectacle       string `yaml:"spectacle"`
	GnomeScreenshot string `yaml:"gnome_screenshot"`
	Scrot           string `yaml:"scrot"`
	Feh             string `yaml:"feh"`
	ScreenCapture   string `yaml:"screencapture"`
}

func DefaultTools() Tools {
	return Tools{
		Grim:            "grim",
		Slurp:           "slurp",
		Spectacle:       "spectacle",
		GnomeScreenshot: "gnome-screenshot",
		Scrot:           "scrot",
		Feh:             "feh",
		ScreenCapture:   "screencapture",
	}
}

// WithDefaults fills the empty fields from DefaultTools.
func (t Tools) WithDefaults() Tools {
	d := DefaultTools()
	for _, pair := range []struct {
		Value   *string
		Default string
	}{
		{&t.Grim, d.Grim},
		{&t.Slurp, d.Slurp},
		{&t.Spectacle, d.Spectacle},
		{&t.GnomeScreenshot, d.GnomeScreenshot},
		{&t.Scrot, d.Scrot},
		{&t.Feh, d.Feh},
		{&t.ScreenCapture, d.ScreenCapture},
	} {
		if *pair.Value == "" {
			*pair.Value = pair.Default
		}
	}
	return t
}

type config struct {
	// TempDir is where the freeze backdrop image is staged; empty means os.TempDir().
	TempDir             string `yaml:"temp_dir"`
	SelectionFilePrefix string `yaml:"selection_file_prefix"`

	// LegacyFixedPath makes all calls share "<TempDir>/selection-tmp.png"
	// instead of a unique file per call. Area captures are then serialized
	// within the process; other processes may still race on the file.
	LegacyFixedPath bool `yaml:"legacy_fixed_path"`

	// SessionOverride forces the session kind ("wayland", "x11", "macos")
	// instead of detecting it from XDG_SESSION_TYPE.
	SessionOverride string `yaml:"session_override"`

	// StrictExitStatus turns non-zero exit codes of capture tools into errors
	// (otherwise they are only logged as warnings).
	StrictExitStatus bool `yaml:"strict_exit_status"`

	Probe ProbeConfig `yaml:"probe"`
	Tools Tools       `yaml:"tools"`
}

type Config config

func Default() Config {
	return Config{
		SelectionFilePrefix: "selection-tmp-",
		Probe: ProbeConfig{
			Mode:    ProbeModeSpawn,
			Timeout: 2 * time.Second,
		},
		Tools: DefaultTools(),
	}
}

// GetTempDir returns TempDir or the system default temporary directory.
func (cfg Config) GetTempDir() string {
	if cfg.TempDir != "" {
		return cfg.TempDir
	}
	return os.TempDir()
}

func ReadConfigFromPath(
	ctx context.Context,
	cfgPath string,
	cfg *Config,
) error {
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("unable to read file '%s': %w", cfgPath, err)
	}

	_, err = cfg.Read(b)
	return err
}

func ReadOrCreateConfigFile(
	ctx context.Context,
	cfgPath string,
) (*Config, error) {
	_, err := os.Stat(cfgPath)
	switch {
	case err == nil:
		cfg := Default()
		err := ReadConfigFromPath(ctx, cfgPath, &cfg)
		if err != nil {
			return nil, fmt.Errorf("unable to read the config from path '%s': %w", cfgPath, err)
		}
		return &cfg, nil
	case os.IsNotExist(err):
		logger.Debugf(ctx, "cannot find file '%s', creating", cfgPath)
		cfg := Default()
		err := WriteConfigToPath(ctx, cfgPath, cfg)
		if err != nil {
			logger.Errorf(ctx, "unable to write config to path '%s': %v", cfgPath, err)
		}
		return &cfg, nil
	default:
		return nil, fmt.Errorf("unable to access file '%s': %w", cfgPath, err)
	}
}

func WriteConfigToPath(
	ctx context.Context,
	cfgPath string,
	cfg Config,
) error {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0750); err != nil {
		return fmt.Errorf("unable to create the directory for '%s': %w", cfgPath, err)
	}
	pathNew := cfgPath + ".new"
	f, err := os.OpenFile(pathNew, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0640)
	if err != nil {
		return fmt.Errorf("unable to open the config file '%s': %w", pathNew, err)
	}
	_, err = cfg.WriteTo(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("unable to write data to file '%s': %w", pathNew, err)
	}
	err = os.Rename(pathNew, cfgPath)
	if err != nil {
		return fmt.Errorf("cannot move '%s' to '%s': %w", pathNew, cfgPath, err)
	}
	logger.Infof(ctx, "wrote to '%s' config %#+v", cfgPath, cfg)
	return nil
}
