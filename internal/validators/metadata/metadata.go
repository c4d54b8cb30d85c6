// Package metadata validates document-header metadata: the document title
// and the ":name: value" attribute lines.
package metadata

import (
	"github.com/smykla-skalski/adoclint/internal/rules"
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// Validator checks the document header against the configured title rule and
// attribute rules.
type Validator struct {
	validators.BaseValidator
}

// NewValidator creates a metadata Validator.
func NewValidator(log logger.Logger) *Validator {
	return &Validator{
		BaseValidator: *validators.NewBaseValidator("validate-metadata", log),
	}
}

// Validate evaluates the header rules against the document root node.
func (v *Validator) Validate(
	doc *document.Node,
	cfg *config.DocumentConfig,
	vctx *validation.Context,
) []validation.Message {
	if cfg == nil {
		return nil
	}

	var messages []validation.Message

	if msg := v.checkTitle(doc, cfg.Title, vctx); msg != nil {
		messages = append(messages, *msg)
	}

	for _, attr := range cfg.Attributes {
		messages = append(messages, v.checkAttribute(doc, attr, vctx)...)
	}

	return messages
}

func (*Validator) checkTitle(
	doc *document.Node,
	title *config.TitleRule,
	vctx *validation.Context,
) *validation.Message {
	if title == nil || title.Matches(doc.Title) {
		return nil
	}

	expected := title.Exact
	if expected == "" {
		expected = title.Pattern
	}

	return &validation.Message{
		Severity: validation.Resolve(title.Severity, config.SeverityError),
		RuleID:   "document.title.match",
		Text:     "Document title does not match the required title",
		Location: vctx.Location(doc),
		Actual:   doc.Title,
		Expected: expected,
	}
}

func (*Validator) checkAttribute(
	doc *document.Node,
	cfg *config.AttributeConfig,
	vctx *validation.Context,
) []validation.Message {
	if cfg.Rule == nil || cfg.Rule.IsZero() {
		return nil
	}

	value, present := doc.Attr(cfg.Name)
	spec := cfg.Rule
	severity := validation.Resolve(spec.Severity, cfg.Severity)

	var violations []*rules.Violation

	appendOne := func(violation *rules.Violation) {
		if violation != nil {
			violations = append(violations, violation)
		}
	}

	what := "attribute " + cfg.Name

	if spec.Required != nil {
		if *spec.Required {
			appendOne(rules.Required(present, what))
		} else {
			appendOne(rules.Forbidden(present, what))
		}
	}

	appendOne(rules.Pattern(spec, value, present, what))
	appendOne(rules.Length(value, present, spec.MinLength, spec.MaxLength, what))
	appendOne(rules.Allowed(value, present, spec.Allowed, what))

	messages := make([]validation.Message, 0, len(violations))

	for _, violation := range violations {
		messages = append(messages, validation.Message{
			Severity:  severity,
			RuleID:    "attribute." + cfg.Name + "." + violation.Constraint,
			Text:      violation.Detail,
			Location:  vctx.Location(doc),
			Attribute: cfg.Name,
			Actual:    violation.Actual,
			Expected:  violation.Expected,
		})
	}

	return messages
}
