package yamlfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/user/carto/internal/entity"
	"github.com/user/carto/internal/repository"
)

const filePerm = 0o644

// SettingsRepoImpl provides a concrete implementation for the SettingsRepository interface using a YAML file.
type SettingsRepoImpl struct {
	path string
}

// NewSettingsRepo creates a new instance of SettingsRepoImpl backed by the file at path.
func NewSettingsRepo(path string) *SettingsRepoImpl {
	return &SettingsRepoImpl{path: path}
}

// Exists reports whether the preferences file is present. Any stat error
// other than "not exist" is returned so a broken location is not mistaken
// for a first start.
func (r *SettingsRepoImpl) Exists() (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %w", repository.ErrReadSettings, err)
}

// Load reads the whole file and decodes it.
func (r *SettingsRepoImpl) Load() (entity.UserSettings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return entity.UserSettings{}, fmt.Errorf("%w: %w", repository.ErrReadSettings, err)
	}

	settings, err := UnmarshalSettings(data)
	if err != nil {
		return entity.UserSettings{}, fmt.Errorf("%w %s: %w", repository.ErrDecodeSettings, r.path, err)
	}
	return settings, nil
}

// Save overwrites the file with the encoded settings.
func (r *SettingsRepoImpl) Save(settings entity.UserSettings) error {
	data, err := MarshalSettings(settings)
	if err != nil {
		return fmt.Errorf("%w: encoding: %w", repository.ErrWriteSettings, err)
	}
	if err := os.WriteFile(r.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrWriteSettings, err)
	}
	return nil
}

func (r *SettingsRepoImpl) Location() string {
	return r.path
}
