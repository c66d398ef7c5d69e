// Package xpath resolves user-provided paths.
package xpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces a leading "~" with the home directory and substitutes
// environment variables (e.g. "$XDG_RUNTIME_DIR/screenshots").
func Expand(rawPath string) (string, error) {
	rawPath = os.ExpandEnv(rawPath)
	if rawPath != "~" && !strings.HasPrefix(rawPath, "~/") {
		return rawPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get user home dir: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(rawPath, "~")), nil
}
