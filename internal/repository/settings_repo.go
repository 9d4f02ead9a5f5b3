package repository

import (
	"errors"

	"github.com/user/carto/internal/entity"
)

var (
	ErrReadSettings   = errors.New("unable to read user preferences file")
	ErrDecodeSettings = errors.New("unable to parse user preferences file")
	ErrWriteSettings  = errors.New("unable to save user preferences file")
)

// SettingsRepository defines the contract for persisting UserSettings.
type SettingsRepository interface {
	// Exists reports whether a preferences file is present.
	Exists() (bool, error)
	// Load reads and decodes the stored settings. A malformed file is an
	// error, never a silent fallback to defaults.
	Load() (entity.UserSettings, error)
	// Save replaces the stored settings.
	Save(settings entity.UserSettings) error
	// Location returns where the settings are stored.
	Location() string
}
