// Package config loads configuration from files, env vars, and flags, and validates it.
package config

import (
	"resource-naming/internal/inflect"
)

// Config holds the application configuration.
type Config struct {
	Naming  inflect.Config `mapstructure:"naming"`
	Output  OutputConfig   `mapstructure:"output"`
	Logging LoggingConfig  `mapstructure:"logging"`

	// Args holds the positional command line arguments.
	Args []string `mapstructure:"-"`
	// ShowVersion is set by --version.
	ShowVersion bool `mapstructure:"-"`
}

// OutputConfig controls how derived names are printed.
type OutputConfig struct {
	Format        string `mapstructure:"format"`         // text, json
	QuoteReserved bool   `mapstructure:"quote_reserved"` // quote names that are SQL reserved words
	QuoteStyle    string `mapstructure:"quote_style"`    // backtick, double
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}
