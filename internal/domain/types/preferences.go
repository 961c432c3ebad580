package types

import "fmt"

// Preferences are the user's stored CLI defaults.
type Preferences struct {
	DefaultFrom Radix  `yaml:"default_from"`
	DefaultTo   Radix  `yaml:"default_to"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultPreferences converts decimal to binary and logs at info.
func DefaultPreferences() Preferences {
	return Preferences{DefaultFrom: 10, DefaultTo: 2, LogLevel: "info"}
}

// Validate checks both default bases and the log level name.
func (p Preferences) Validate() error {
	if !p.DefaultFrom.Valid() {
		return fmt.Errorf("default_from: base %d out of range", p.DefaultFrom)
	}
	if !p.DefaultTo.Valid() {
		return fmt.Errorf("default_to: base %d out of range", p.DefaultTo)
	}
	switch p.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("log_level: unknown level %q", p.LogLevel)
}

// WithDefaults fills zero fields from DefaultPreferences.
func (p Preferences) WithDefaults() Preferences {
	d := DefaultPreferences()
	if p.DefaultFrom == 0 {
		p.DefaultFrom = d.DefaultFrom
	}
	if p.DefaultTo == 0 {
		p.DefaultTo = d.DefaultTo
	}
	if p.LogLevel == "" {
		p.LogLevel = d.LogLevel
	}
	return p
}
