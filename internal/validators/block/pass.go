package block

import (
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// PassValidator validates pass-through blocks. Pass blocks inject raw output
// into the rendered document, so rule sets usually require a declared type
// and a justification via the custom pass-type and pass-reason attributes.
type PassValidator struct {
	validators.BaseValidator
}

// NewPassValidator creates a PassValidator.
func NewPassValidator(log logger.Logger) *PassValidator {
	return &PassValidator{
		BaseValidator: *validators.NewBaseValidator("validate-pass", log),
	}
}

// Kind returns the block kind this validator evaluates.
func (*PassValidator) Kind() config.BlockKind {
	return config.BlockPass
}

// Validate checks the configured pass-through rules.
func (v *PassValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, config.BlockPass)

	passType, hasType := node.Attr("pass-type")
	reason, hasReason := node.Attr("pass-reason")

	facts := Facts{
		"type":    attrFact(passType, hasType, "pass-type"),
		"reason":  attrFact(reason, hasReason, "pass-reason"),
		"content": rawFact(node.Text()),
	}

	return evalRules(config.BlockPass, node, cfg, vctx, facts)
}
