package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/user/carto/internal/adapter/yamlfile"
	"github.com/user/carto/internal/app"
	"github.com/user/carto/pkg/config"
	"github.com/user/carto/pkg/logger"
	"github.com/user/carto/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load config:", err)
		os.Exit(1)
	}

	// --- Logger ---
	log := logger.Init(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	defer log.Sync() //nolint:errcheck

	// --- Metrics ---
	// Registered on prometheus.DefaultRegisterer; the host process scrapes
	// prometheus.DefaultGatherer.
	m := metrics.New(nil)

	// --- User configuration ---
	// Nothing else can start without it, so any failure ends the process.
	store, resolver, err := app.InitializeConfigStore(log, m)
	if err != nil {
		log.Fatal("could not initialize user configuration", zap.Error(err))
	}

	log.Info("carto configuration loaded",
		zap.String("data_dir", resolver.DataDir()),
		zap.String("prefs_dir", resolver.PrefsDir()),
		zap.Bool("run_wizard", store.UserSettings.RunWizard),
		zap.Int("allow_list", len(store.UserSettings.AllowList)),
		zap.Int("block_list", len(store.UserSettings.BlockList)),
		zap.Int("lenses", store.Lenses.Len()),
	)

	if cfg.PrintSettings {
		out, err := yamlfile.MarshalSettings(store.UserSettings)
		if err != nil {
			log.Fatal("could not encode user preferences", zap.Error(err))
		}
		fmt.Fprintf(os.Stdout, "# %s\n%s", resolver.PrefsFile(), out)
	}
}
