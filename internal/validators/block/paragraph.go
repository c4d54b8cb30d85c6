package block

import (
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// ParagraphValidator validates plain paragraphs.
type ParagraphValidator struct {
	validators.BaseValidator
}

// NewParagraphValidator creates a ParagraphValidator.
func NewParagraphValidator(log logger.Logger) *ParagraphValidator {
	return &ParagraphValidator{
		BaseValidator: *validators.NewBaseValidator("validate-paragraph", log),
	}
}

// Kind returns the block kind this validator evaluates.
func (*ParagraphValidator) Kind() config.BlockKind {
	return config.BlockParagraph
}

// Validate checks paragraph line bounds. Blank and whitespace-only lines do
// not count toward paragraph length.
func (v *ParagraphValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, config.BlockParagraph)

	facts := Facts{
		"lines": countFact(node.NonBlankLineCount()),
	}

	return evalRules(config.BlockParagraph, node, cfg, vctx, facts)
}
