package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/normalize"
	"github.com/gyeh/salesreport/internal/render"
)

// Environment variables consulted when the matching flag was not given.
const (
	EnvLogFormat = "SALESREPORT_LOG_FORMAT"
	EnvLogLevel  = "SALESREPORT_LOG_LEVEL"
	EnvFormat    = "SALESREPORT_FORMAT"
)

// Config holds all runtime configuration for a salesreport run.
type Config struct {
	FilePath       string
	ConfigFile     string
	StartDate      string // YYYY-MM-DD, inclusive; empty means unbounded
	EndDate        string // YYYY-MM-DD, inclusive; empty means unbounded
	Format         string // "text" or "json"
	SkipValidation bool
	Delimiter      string // "", ",", ";", "tab", ...
	LogFormat      string // "text" or "json"
	LogLevel       string
	DateColumns    []string `yaml:"date_columns"` // date-column priority list
}

// IsSet reports whether a flag was given explicitly on the command line.
type IsSet func(flag string) bool

// yamlConfig is the on-disk YAML structure. Pointers distinguish an absent
// key from a zero value.
type yamlConfig struct {
	Format         *string  `yaml:"format"`
	Delimiter      *string  `yaml:"delimiter"`
	SkipValidation *bool    `yaml:"skip_validation"`
	DateColumns    []string `yaml:"date_columns"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values for flags reported by explicit are left untouched.
func (c *Config) LoadFromFile(path string, explicit IsSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if explicit == nil {
		explicit = func(string) bool { return false }
	}

	if yc.Format != nil && !explicit("format") {
		c.Format = *yc.Format
	}
	if yc.Delimiter != nil && !explicit("delimiter") {
		c.Delimiter = *yc.Delimiter
	}
	if yc.SkipValidation != nil && !explicit("skip-validation") {
		c.SkipValidation = *yc.SkipValidation
	}
	if yc.DateColumns != nil {
		c.DateColumns = yc.DateColumns
	}
	return c.validateDateColumns()
}

// Load layers the YAML file (when ConfigFile is set) and then the environment
// under explicit flags. Precedence is flag, env, file, default.
func (c *Config) Load(explicit IsSet) error {
	if c.ConfigFile != "" {
		if err := c.LoadFromFile(c.ConfigFile, explicit); err != nil {
			return err
		}
	}
	c.ApplyEnv(explicit)
	return nil
}

// ApplyEnv fills log and output settings from the environment for flags that
// were not set explicitly.
func (c *Config) ApplyEnv(explicit IsSet) {
	apply := func(flag, env string, dst *string) {
		if explicit != nil && explicit(flag) {
			return
		}
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	apply("log-format", EnvLogFormat, &c.LogFormat)
	apply("log-level", EnvLogLevel, &c.LogLevel)
	apply("format", EnvFormat, &c.Format)
}

// validateDateColumns trims the priority list and drops blanks.
// If DateColumns is empty, it defaults to model.DefaultDateColumns.
func (c *Config) validateDateColumns() error {
	var cols []string
	for _, col := range c.DateColumns {
		if col = strings.TrimSpace(col); col != "" {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		c.DateColumns = slices.Clone(model.DefaultDateColumns)
		return nil
	}
	for i, col := range cols {
		if slices.Contains(cols[:i], col) {
			return fmt.Errorf("duplicate date column %q in config", col)
		}
	}
	c.DateColumns = cols
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
// The file itself is not opened here; an unreadable file is reported by the
// run as "no data".
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("a sales file path is required")
	}
	if _, err := render.New(c.Format); err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	start, end, err := c.Bounds()
	if err != nil {
		return err
	}
	if start != nil && end != nil && start.After(*end) {
		return fmt.Errorf("--start-date %s is after --end-date %s", c.StartDate, c.EndDate)
	}
	return c.validateDateColumns()
}

// Bounds parses the optional date range.
func (c *Config) Bounds() (start, end *time.Time, err error) {
	if start, err = normalize.ParseDateBound(c.StartDate); err != nil {
		return nil, nil, fmt.Errorf("--start-date: %w", err)
	}
	if end, err = normalize.ParseDateBound(c.EndDate); err != nil {
		return nil, nil, fmt.Errorf("--end-date: %w", err)
	}
	return start, end, nil
}

// DelimiterRune returns the configured CSV delimiter, or 0 to auto-detect.
func (c *Config) DelimiterRune() (rune, error) {
	switch strings.ToLower(c.Delimiter) {
	case "", "auto":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	runes := []rune(c.Delimiter)
	if len(runes) != 1 || runes[0] == '"' || runes[0] == '\n' || runes[0] == '\r' {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character or \"tab\"", c.Delimiter)
	}
	return runes[0], nil
}
