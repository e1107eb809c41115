package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// Path is the SQLite database file location.
	Path string `mapstructure:"path" yaml:"path"`
}

// PlannerConfig holds defaults for new plans and generation.
type PlannerConfig struct {
	// DefaultTheme seeds new plans ("lazy", "adventurous", "family").
	DefaultTheme string `mapstructure:"default_theme" yaml:"default_theme"`

	// ActiveDays are the days a fresh plan starts with.
	ActiveDays []string `mapstructure:"active_days" yaml:"active_days"`

	// MaxActivitiesPerDay caps auto-generation per day.
	MaxActivitiesPerDay int `mapstructure:"max_activities_per_day" yaml:"max_activities_per_day"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Planner PlannerConfig `mapstructure:"planner" yaml:"planner"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/weekendly/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "weekendly", "config.yaml")
}

// DefaultDatabasePath returns the default SQLite file location,
// located at ~/.local/share/weekendly/weekendly.db.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "weekendly.db")
	}
	return filepath.Join(home, ".local", "share", "weekendly", "weekendly.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Path: DefaultDatabasePath(),
		},
		Planner: PlannerConfig{
			DefaultTheme:        string(ThemeLazy),
			ActiveDays:          []string{string(DaySaturday), string(DaySunday)},
			MaxActivitiesPerDay: DefaultMaxActivitiesPerDay,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("storage.path", DefaultDatabasePath())
	v.SetDefault("planner.default_theme", string(ThemeLazy))
	v.SetDefault("planner.active_days", []string{string(DaySaturday), string(DaySunday)})
	v.SetDefault("planner.max_activities_per_day", DefaultMaxActivitiesPerDay)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Planner.MaxActivitiesPerDay <= 0 {
		cfg.Planner.MaxActivitiesPerDay = DefaultMaxActivitiesPerDay
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("planner", cfg.Planner)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
