package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/adoclint/pkg/config"
)

var (
	// ErrNilConfig is returned when validation receives a nil config.
	ErrNilConfig = errors.New("config is nil")

	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")
)

// validFormats are the supported output formats.
var validFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validator performs semantic validation on a loaded configuration. All
// rule patterns are compiled here, so a config that validates cleanly
// never produces a regex error during document validation.
type Validator struct{}

// NewValidator creates a config Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the whole configuration tree.
func (*Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		if !validFormats[cfg.Output.Format] {
			return errors.Wrapf(ErrInvalidFormat, "%q", cfg.Output.Format)
		}
	}

	return nil
}
