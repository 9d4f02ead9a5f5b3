//go:build darwin

package paths

import (
	"path/filepath"
	"strings"
)

// projectDirs returns macOS-conventional directories under ~/Library/, named
// by the bundle identifier, e.g. com.athlabs.carto.
func projectDirs(home string, id AppID) (string, string, error) {
	bundle := strings.Join([]string{
		strings.TrimSpace(id.Qualifier),
		strings.ReplaceAll(strings.TrimSpace(id.Organization), " ", "-"),
		strings.ReplaceAll(strings.TrimSpace(id.Application), " ", "-"),
	}, ".")

	library := filepath.Join(home, "Library")
	return filepath.Join(library, "Application Support", bundle),
		filepath.Join(library, "Preferences", bundle),
		nil
}
