package database

import (
	"log"
	"os"
	"path/filepath"

	gap "github.com/muesli/go-app-paths"
)

// ResolveDataPath returns the database file location inside the platform
// user-data directory for the given application, creating the directory when
// needed. When the user-data directory cannot be resolved it falls back to
// the working directory.
func ResolveDataPath(appName, filename string) string {
	scope := gap.NewScope(gap.User, appName)
	path, err := scope.DataPath(filename)
	if err == nil {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
			return path
		}
	}

	log.Printf("Using fallback database path: ./%s", filename)
	return filename
}
