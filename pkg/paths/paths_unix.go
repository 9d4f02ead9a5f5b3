//go:build !darwin && !windows

package paths

import (
	"path/filepath"
	"strings"
)

// projectDirs returns XDG-compliant directories. Respects XDG_DATA_HOME and
// XDG_CONFIG_HOME when they hold absolute paths.
func projectDirs(home string, id AppID) (string, string, error) {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id.Application), " ", ""))

	dataHome := envDir("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	configHome := envDir("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	return filepath.Join(dataHome, name), filepath.Join(configHome, name), nil
}
