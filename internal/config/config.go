package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/schedule"
)

// Config is the top-level focussphere configuration.
type Config struct {
	DBPath       string   `mapstructure:"db_path"`
	AnalysisDays int      `mapstructure:"analysis_days"`
	Schedule     Schedule `mapstructure:"schedule"`
	Budget       Budget   `mapstructure:"budget"`
	Output       Output   `mapstructure:"output"`
	Watch        Watch    `mapstructure:"watch"`
}

// Schedule defines the day-view geometry in pixels per hour.
type Schedule struct {
	HourHeight      float64 `mapstructure:"hour_height"`
	MinBlockHeight  float64 `mapstructure:"min_block_height"`
	FallbackMinutes int     `mapstructure:"fallback_minutes"`
}

// Budget defines the spending budget. A monthlyBudget setting stored in the
// database takes precedence.
type Budget struct {
	Monthly float64 `mapstructure:"monthly"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Watch defines the reminder watcher settings.
type Watch struct {
	Interval time.Duration `mapstructure:"interval"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", filepath.Join(DefaultConfigDir, DefaultDBName))
	v.SetDefault("analysis_days", DefaultAnalysisDays)
	v.SetDefault("schedule.hour_height", DefaultSchedule.HourHeight)
	v.SetDefault("schedule.min_block_height", DefaultSchedule.MinBlockHeight)
	v.SetDefault("schedule.fallback_minutes", DefaultSchedule.FallbackMinutes)
	v.SetDefault("budget.monthly", DefaultBudget.Monthly)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("watch.interval", DefaultWatch.Interval)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	if !slices.Contains(analytics.WindowChoices, c.AnalysisDays) {
		return fmt.Errorf("analysis_days must be one of %v, got %d", analytics.WindowChoices, c.AnalysisDays)
	}
	if c.Schedule.HourHeight <= 0 {
		return fmt.Errorf("schedule.hour_height must be positive, got %v", c.Schedule.HourHeight)
	}
	if c.Schedule.MinBlockHeight <= 0 {
		return fmt.Errorf("schedule.min_block_height must be positive, got %v", c.Schedule.MinBlockHeight)
	}
	if c.Budget.Monthly <= 0 {
		return fmt.Errorf("budget.monthly must be positive, got %v", c.Budget.Monthly)
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be positive, got %v", c.Watch.Interval)
	}
	return nil
}

// ScheduleOptions converts the schedule section to layout options.
func (c *Config) ScheduleOptions() schedule.Options {
	return schedule.Options{
		HourHeight:      c.Schedule.HourHeight,
		MinHeight:       c.Schedule.MinBlockHeight,
		FallbackMinutes: c.Schedule.FallbackMinutes,
	}
}

// MonthlyBudget returns the configured budget as a decimal amount.
func (c *Config) MonthlyBudget() decimal.Decimal {
	return decimal.NewFromFloat(c.Budget.Monthly)
}

// DBPath returns the default full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
