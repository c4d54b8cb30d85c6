package block

import (
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// Registry maps canonical block kinds to their validators.
type Registry map[config.BlockKind]validators.BlockValidator

// NewRegistry builds the full validator set. Literal is not registered:
// the classifier folds literal blocks into listings, and Lookup folds
// literal configs the same way.
func NewRegistry(log logger.Logger) Registry {
	vs := []validators.BlockValidator{
		NewParagraphValidator(log),
		NewListingValidator(log),
		NewTableValidator(log),
		NewImageValidator(log),
		NewAdmonitionValidator(log),
		NewQuoteValidator(config.BlockVerse, log),
		NewQuoteValidator(config.BlockQuote, log),
		NewVideoValidator(log),
		NewPassValidator(log),
	}

	registry := make(Registry, len(vs))

	for _, v := range vs {
		registry[v.Kind()] = v
	}

	return registry
}

// Lookup returns the validator for a kind, folding literal into listing.
// Unknown kinds have no validator.
func (r Registry) Lookup(kind config.BlockKind) (validators.BlockValidator, bool) {
	if kind == config.BlockLiteral {
		kind = config.BlockListing
	}

	v, ok := r[kind]

	return v, ok
}
