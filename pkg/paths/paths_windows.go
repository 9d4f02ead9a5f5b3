//go:build windows

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// projectDirs returns directories under the roaming AppData folder,
// %APPDATA%\<Organization>\<Application>\{data,config}.
func projectDirs(_ string, id AppID) (string, string, error) {
	appData, err := os.UserConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrNoHomeDir, err)
	}

	project := filepath.Join(appData, strings.TrimSpace(id.Organization), strings.TrimSpace(id.Application))
	return filepath.Join(project, "data"), filepath.Join(project, "config"), nil
}
