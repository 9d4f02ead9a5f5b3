package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CARTO_LOG_LEVEL", "")
	t.Setenv("CARTO_PRINT_SETTINGS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.PrintSettings {
		t.Error("PrintSettings = false, want true")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CARTO_LOG_LEVEL", "debug")
	t.Setenv("CARTO_PRINT_SETTINGS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.PrintSettings {
		t.Error("PrintSettings = true, want false")
	}
}
