// Package validators defines the uniform contract every block validator
// implements, and the shared base they embed.
package validators

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// BlockValidator evaluates one classified node against its block config.
//
// Implementations must return an empty slice, never nil semantics that the
// caller has to special-case, when nothing is configured or everything
// passes, and must not fail on malformed or missing node data — an absent
// value is itself what a required-style rule flags. Occurrence tracking is
// the caller's responsibility.
type BlockValidator interface {
	// Name returns the validator name for logging.
	Name() string

	// Kind returns the block kind this validator evaluates.
	Kind() config.BlockKind

	// Validate evaluates the node and returns zero or more findings.
	Validate(
		node *document.Node,
		cfg *config.BlockConfig,
		vctx *validation.Context,
	) []validation.Message
}

// BaseValidator provides the common name and logger plumbing.
type BaseValidator struct {
	name string
	log  logger.Logger
}

// NewBaseValidator creates a BaseValidator.
func NewBaseValidator(name string, log logger.Logger) *BaseValidator {
	return &BaseValidator{name: name, log: log}
}

// Name returns the validator name.
func (v *BaseValidator) Name() string {
	return v.name
}

// Logger returns the logger.
//
//nolint:ireturn // interface for polymorphism
func (v *BaseValidator) Logger() logger.Logger {
	return v.log
}

// EnsureKind asserts that the config passed to a validator is of the kind it
// handles. A mismatch is a wiring bug in the caller, not a document or
// configuration defect, so it is surfaced as a panic rather than a finding.
func EnsureKind(cfg *config.BlockConfig, want config.BlockKind) {
	got := cfg.Kind()

	// Literal configs are evaluated by the listing validator.
	if got == config.BlockLiteral {
		got = config.BlockListing
	}

	if got != want {
		panic(errors.AssertionFailedf(
			"validator for %s invoked with %s config",
			want,
			cfg.Kind(),
		))
	}
}
