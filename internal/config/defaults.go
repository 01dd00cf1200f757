// Package config provides configuration loading and defaults for vitalog.
package config

// DefaultConfigDir is the default location for vitalog configuration.
const DefaultConfigDir = "~/.config/vitalog"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "vitalog.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultUser is the user id used when --user is not given. The store is
// scoped per user even in single-user local use.
const DefaultUser = "local"

// DefaultHistoryLimit is how many records list views show per category.
const DefaultHistoryLimit = 10

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
