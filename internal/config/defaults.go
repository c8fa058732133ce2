// Package config provides configuration loading and defaults for focussphere.
package config

import "time"

// DefaultConfigDir is the default location for focussphere configuration.
const DefaultConfigDir = "~/.config/focussphere"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "focussphere.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment overrides, e.g. FOCUSSPHERE_ANALYSIS_DAYS.
const EnvPrefix = "FOCUSSPHERE"

// DefaultAnalysisDays is the analytics window used when none is requested.
const DefaultAnalysisDays = 7

// DefaultSchedule holds the default day-view geometry.
var DefaultSchedule = Schedule{
	HourHeight:      60,
	MinBlockHeight:  20,
	FallbackMinutes: 60,
}

// DefaultBudget holds the default monthly budget.
var DefaultBudget = Budget{
	Monthly: 1000,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultWatch holds the default reminder watch settings.
var DefaultWatch = Watch{
	Interval: 5 * time.Minute,
}
