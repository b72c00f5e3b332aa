package settings

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultPaths returns the conventional system-level and user-level
// locations of a settings file, derived from the XDG base directories:
// the lowest-precedence system config dir (typically /etc/xdg) for the
// system layer and the user's config home for the user layer.
func DefaultPaths(app, file string) (sysPath, userPath string) {
	sysDir := "/etc"
	if len(xdg.ConfigDirs) > 0 {
		sysDir = xdg.ConfigDirs[len(xdg.ConfigDirs)-1]
	}
	return filepath.Join(sysDir, app, file), filepath.Join(xdg.ConfigHome, app, file)
}
