package config

import (
	"github.com/smykla-skalski/adoclint/pkg/config"
)

const (
	// DefaultFormat is the default output format.
	DefaultFormat = "text"
)

// DefaultConfig returns a Config with all default values populated. The
// document section is empty: with no rules configured every document is
// valid.
func DefaultConfig() *config.Config {
	return &config.Config{
		Document: &config.DocumentConfig{},
		Output:   DefaultOutputConfig(),
	}
}

// DefaultOutputConfig returns the default output configuration.
func DefaultOutputConfig() *config.OutputConfig {
	return &config.OutputConfig{
		Format: DefaultFormat,
		FailOn: config.SeverityError,
	}
}

// defaultsToMap converts the defaults to a map for koanf loading.
func defaultsToMap() map[string]any {
	return map[string]any{
		"output": map[string]any{
			"format":  DefaultFormat,
			"fail_on": config.SeverityError.String(),
		},
	}
}
