package block

import (
	"strconv"
	"strings"

	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// QuoteValidator validates verse and quote blocks. Both kinds expose the
// same facts (author, source, content, lines); which one a node is was
// decided by the classifier.
type QuoteValidator struct {
	validators.BaseValidator
	kind config.BlockKind
}

// NewQuoteValidator creates a validator for the given kind, which must be
// BlockVerse or BlockQuote.
func NewQuoteValidator(kind config.BlockKind, log logger.Logger) *QuoteValidator {
	return &QuoteValidator{
		BaseValidator: *validators.NewBaseValidator("validate-"+kind.String(), log),
		kind:          kind,
	}
}

// Kind returns the block kind this validator evaluates.
func (v *QuoteValidator) Kind() config.BlockKind {
	return v.kind
}

// Validate checks the configured quote or verse rules.
func (v *QuoteValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, v.kind)

	author, hasAuthor := node.Attr("attribution")
	source, hasSource := node.Attr("citetitle")
	content := node.Text()

	facts := Facts{
		"author":  attrFact(author, hasAuthor, "attribution"),
		"source":  attrFact(source, hasSource, "citetitle"),
		"content": rawFact(content),
		"lines":   countFact(node.NonBlankLineCount()),
	}

	messages := evalRules(v.kind, node, cfg, vctx, facts)
	messages = append(messages, v.checkLinePattern(node, cfg, vctx)...)

	return messages
}

// checkLinePattern applies a per-line pattern configured on the "lines"
// field: every non-blank line must match in full.
func (v *QuoteValidator) checkLinePattern(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	spec := cfg.Rules["lines"]
	if spec == nil || spec.Pattern == "" {
		return nil
	}

	for i, line := range node.Lines() {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if spec.MatchString(line) {
			continue
		}

		return []validation.Message{{
			Severity: validation.Resolve(spec.Severity, cfg.Severity),
			RuleID:   v.kind.String() + ".lines.pattern",
			Text:     "line " + strconv.Itoa(i+1) + " does not match the required pattern",
			Location: vctx.Location(node),
			Actual:   line,
			Expected: spec.Pattern,
		}}
	}

	return nil
}
