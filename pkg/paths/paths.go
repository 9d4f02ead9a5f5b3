// Package paths resolves where carto keeps its data and preferences.
// Each platform has its own implementation of the base directories, following
// that platform's convention for application data versus user preferences.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	prefsFileName = "settings.yaml"
	lensesDirName = "lenses"
)

var (
	ErrNoHomeDir    = errors.New("cannot determine home directory")
	ErrInvalidAppID = errors.New("invalid application identifier")
)

// AppID identifies the application to the platform directory conventions.
type AppID struct {
	Qualifier    string // reverse-domain organization, e.g. "com"
	Organization string
	Application  string
}

// Carto is the fixed identity of this application.
var Carto = AppID{
	Qualifier:    "com",
	Organization: "athlabs",
	Application:  "carto",
}

// Resolver holds the resolved directories. It is immutable once built.
type Resolver struct {
	dataDir  string
	prefsDir string
}

// New resolves the platform directories for id.
func New(id AppID) (*Resolver, error) {
	if id.Application == "" {
		return nil, fmt.Errorf("%w: application name is empty", ErrInvalidAppID)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoHomeDir, err)
	}
	if home == "" || !filepath.IsAbs(home) {
		return nil, fmt.Errorf("%w: %q is not an absolute path", ErrNoHomeDir, home)
	}

	dataDir, prefsDir, err := projectDirs(home, id)
	if err != nil {
		return nil, err
	}
	return &Resolver{dataDir: dataDir, prefsDir: prefsDir}, nil
}

// FromDirs builds a Resolver rooted at explicit directories.
func FromDirs(dataDir, prefsDir string) *Resolver {
	return &Resolver{dataDir: dataDir, prefsDir: prefsDir}
}

func (r *Resolver) DataDir() string {
	return r.dataDir
}

// PrefsDir may be the same as DataDir on some platforms.
func (r *Resolver) PrefsDir() string {
	return r.prefsDir
}

// PrefsFile is the user preferences file.
func (r *Resolver) PrefsFile() string {
	return filepath.Join(r.prefsDir, prefsFileName)
}

// LensesDir holds lens definition files.
func (r *Resolver) LensesDir() string {
	return filepath.Join(r.dataDir, lensesDirName)
}

// envDir returns the value of the environment variable key when it is an
// absolute path, and fallback otherwise.
func envDir(key, fallback string) string {
	if v := os.Getenv(key); v != "" && filepath.IsAbs(v) {
		return v
	}
	return fallback
}
