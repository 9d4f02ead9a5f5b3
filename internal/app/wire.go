package app

import (
	"go.uber.org/zap"

	"github.com/user/carto/internal/adapter/yamlfile"
	"github.com/user/carto/internal/usecase"
	"github.com/user/carto/pkg/metrics"
	"github.com/user/carto/pkg/paths"
)

// InitializeConfigStore resolves the carto directories, bootstraps the user
// preferences and returns the resulting store along with the resolver so
// callers know where lenses and preferences live.
func InitializeConfigStore(logger *zap.Logger, m *metrics.Metrics) (*usecase.ConfigStore, *paths.Resolver, error) {
	resolver, err := paths.New(paths.Carto)
	if err != nil {
		return nil, nil, err
	}

	store, err := Bootstrap(resolver, logger, m)
	if err != nil {
		return nil, nil, err
	}
	return store, resolver, nil
}

// Bootstrap runs the configuration bootstrap against resolver.
func Bootstrap(resolver *paths.Resolver, logger *zap.Logger, m *metrics.Metrics) (*usecase.ConfigStore, error) {
	settingsRepo := yamlfile.NewSettingsRepo(resolver.PrefsFile())
	return usecase.NewConfigBootstrap(resolver, settingsRepo, logger, m).Initialize()
}
