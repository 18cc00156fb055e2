package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "carbon"

// ResolveDataDir returns the directory that holds the workspace document and
// the history database, creating it if needed. A non-empty override wins;
// otherwise the platform per-user config directory is used, with the current
// working directory as the last resort.
func ResolveDataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dir = filepath.Join(base, appDirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %s", ErrDataDirUnavailable, err)
	}

	return dir, nil
}
