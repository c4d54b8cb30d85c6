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

// AdmonitionValidator validates admonition blocks (NOTE, TIP, WARNING,
// IMPORTANT, CAUTION).
type AdmonitionValidator struct {
	validators.BaseValidator
}

// NewAdmonitionValidator creates an AdmonitionValidator.
func NewAdmonitionValidator(log logger.Logger) *AdmonitionValidator {
	return &AdmonitionValidator{
		BaseValidator: *validators.NewBaseValidator("validate-admonition", log),
	}
}

// Kind returns the block kind this validator evaluates.
func (*AdmonitionValidator) Kind() config.BlockKind {
	return config.BlockAdmonition
}

// Validate checks the configured admonition rules, including the per-type
// running occurrence count.
func (v *AdmonitionValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, config.BlockAdmonition)

	admonitionType := strings.ToUpper(strings.TrimSpace(node.Style))
	icon, hasIcon := node.Attr("icon")

	facts := Facts{
		"type":    stringFact(admonitionType),
		"title":   stringFact(node.Title),
		"content": rawFact(node.Text()),
		"lines":   countFact(len(node.Lines())),
		"icon":    attrFact(icon, hasIcon, "icon"),
	}

	messages := evalRules(config.BlockAdmonition, node, cfg, vctx, facts)
	messages = append(messages, v.checkTypeOccurrences(node, cfg, vctx, admonitionType)...)

	return messages
}

// checkTypeOccurrences enforces the per-type maximum. This is the one rule
// that reads cross-node running state: the count lives in the validation
// context under a validator-private key, so its lifetime is exactly one
// document pass.
func (*AdmonitionValidator) checkTypeOccurrences(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
	admonitionType string,
) []validation.Message {
	spec := cfg.Rules["typeOccurrences"]
	if spec == nil || spec.Max == nil || admonitionType == "" {
		return nil
	}

	key := validation.OccurrenceKey{
		Kind: "admonition-type",
		Name: strings.ToLower(admonitionType),
	}

	count := vctx.Track(key, node)
	if count <= *spec.Max {
		return nil
	}

	return []validation.Message{{
		Severity: validation.Resolve(spec.Severity, cfg.Severity),
		RuleID:   "admonition.typeOccurrences.max",
		Text:     "Too many " + admonitionType + " admonitions",
		Location: vctx.Location(node),
		Actual:   strconv.Itoa(count),
		Expected: "at most " + strconv.Itoa(*spec.Max),
	}}
}
