package xpath

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// LookupTool returns the absolute path of the executable the way it
// would be started: through PATH, or relative to the working directory
// if the name contains a separator.
func LookupTool(name string) (string, error) {
	toolPath, err := exec.LookPath(name)
	switch {
	case err == nil:
		return filepath.Abs(toolPath)
	case errors.Is(err, exec.ErrDot):
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to get current working directory: %w", err)
		}
		return exec.LookPath(filepath.Join(wd, name))
	default:
		return "", err
	}
}
