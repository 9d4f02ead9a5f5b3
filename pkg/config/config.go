package config

import "github.com/spf13/viper"

// Config holds the runtime settings of the carto binary. User preferences
// live in the preferences file, not here.
type Config struct {
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	PrintSettings bool   `mapstructure:"PRINT_SETTINGS"`
}

// Load reads configuration from CARTO_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CARTO")
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PRINT_SETTINGS", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
