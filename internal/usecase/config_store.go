package usecase

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/user/carto/internal/entity"
	"github.com/user/carto/internal/repository"
	"github.com/user/carto/pkg/metrics"
)

var ErrCreateDir = errors.New("unable to create directory")

const dirPerm = 0o755

// DirectoryResolver yields the directories the configuration lives in.
type DirectoryResolver interface {
	DataDir() string
	PrefsDir() string
	LensesDir() string
	PrefsFile() string
}

// ConfigStore holds the user settings and the lens registry for the lifetime
// of the process. Both fields are meant to be read and updated by the wizard
// and the lens loader.
type ConfigStore struct {
	UserSettings entity.UserSettings
	Lenses       entity.LensRegistry
}

// ConfigBootstrap prepares the configuration locations and loads or creates
// the user preferences.
type ConfigBootstrap struct {
	dirs     DirectoryResolver
	settings repository.SettingsRepository
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewConfigBootstrap creates a new ConfigBootstrap. logger and m may be nil.
func NewConfigBootstrap(
	dirs DirectoryResolver,
	settings repository.SettingsRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) *ConfigBootstrap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigBootstrap{
		dirs:     dirs,
		settings: settings,
		logger:   logger,
		metrics:  m,
	}
}

// EnsureDirectories creates the data, preferences and lenses directories if
// they are missing. Calling it again is a no-op.
func (b *ConfigBootstrap) EnsureDirectories() error {
	for _, dir := range []string{b.dirs.DataDir(), b.dirs.PrefsDir(), b.dirs.LensesDir()} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
		}
		b.logger.Debug("directory ready", zap.String("path", dir))
	}
	return nil
}

// Initialize runs the startup sequence and returns the populated store. Every
// error is unrecoverable for the caller; nothing is partially applied.
func (b *ConfigBootstrap) Initialize() (*ConfigStore, error) {
	start := time.Now()

	settings, outcome, err := b.initialize()
	if b.metrics != nil {
		b.metrics.IncBootstrap(outcome)
		b.metrics.ObserveBootstrap(time.Since(start).Seconds())
	}
	if err != nil {
		b.logger.Error("configuration bootstrap failed", zap.Error(err))
		return nil, err
	}

	b.logger.Info("configuration ready",
		zap.String("outcome", outcome),
		zap.String("prefs_file", b.settings.Location()),
		zap.String("lenses_dir", b.dirs.LensesDir()),
		zap.Stringer("domain_crawl_limit", settings.DomainCrawlLimit),
	)

	return &ConfigStore{
		UserSettings: settings,
		Lenses:       entity.NewLensRegistry(),
	}, nil
}

func (b *ConfigBootstrap) initialize() (entity.UserSettings, string, error) {
	if err := b.EnsureDirectories(); err != nil {
		return entity.UserSettings{}, metrics.OutcomeFailed, err
	}

	exists, err := b.settings.Exists()
	if err != nil {
		return entity.UserSettings{}, metrics.OutcomeFailed, err
	}

	if exists {
		settings, err := b.settings.Load()
		if err != nil {
			return entity.UserSettings{}, metrics.OutcomeFailed, err
		}
		return settings, metrics.OutcomeLoaded, nil
	}

	settings := entity.DefaultUserSettings()
	if err := b.settings.Save(settings); err != nil {
		return entity.UserSettings{}, metrics.OutcomeFailed, err
	}
	b.logger.Info("wrote default user preferences", zap.String("path", b.settings.Location()))
	return settings, metrics.OutcomeDefaulted, nil
}
