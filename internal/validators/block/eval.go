package block

import (
	"sort"

	"github.com/smykla-skalski/adoclint/internal/rules"
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
)

// evalRules is the shared evaluation loop: for every configured rule, look
// up the matching fact and apply the constraints the spec sets. Absent rules
// are skipped entirely — absence means "no constraint", not "default
// constraint". Fields are processed in sorted order so message order is
// deterministic.
func evalRules(
	kind config.BlockKind,
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
	facts Facts,
) []validation.Message {
	if len(cfg.Rules) == 0 {
		return nil
	}

	fields := make([]string, 0, len(cfg.Rules))

	for field, spec := range cfg.Rules {
		if spec != nil && !spec.IsZero() {
			fields = append(fields, field)
		}
	}

	sort.Strings(fields)

	fieldTypes := config.FieldsFor(kind)
	location := vctx.Location(node)
	messages := make([]validation.Message, 0, len(fields))

	for _, field := range fields {
		spec := cfg.Rules[field]
		fact := facts[field]
		severity := validation.Resolve(spec.Severity, cfg.Severity)
		ruleID := kind.String() + "." + field

		for _, violation := range evalField(fieldTypes[field], field, spec, fact) {
			messages = append(messages, validation.Message{
				Severity:  severity,
				RuleID:    ruleID + "." + violation.Constraint,
				Text:      violation.Detail,
				Location:  location,
				Attribute: fact.Attribute,
				Actual:    violation.Actual,
				Expected:  violation.Expected,
			})
		}
	}

	return messages
}

// evalField applies the constraints of one rule spec to one fact.
func evalField(
	fieldType config.FieldType,
	field string,
	spec *config.RuleSpec,
	fact Fact,
) []*rules.Violation {
	var violations []*rules.Violation

	appendOne := func(v *rules.Violation) {
		if v != nil {
			violations = append(violations, v)
		}
	}

	if spec.Required != nil {
		if *spec.Required {
			appendOne(rules.Required(fact.Present, field))
		} else {
			appendOne(rules.Forbidden(fact.Present, field))
		}
	}

	switch fieldType {
	case config.FieldString:
		appendOne(rules.Pattern(spec, fact.Value, fact.Present, field))
		appendOne(rules.Length(fact.Value, fact.Present, spec.MinLength, spec.MaxLength, field))
		appendOne(rules.Allowed(fact.Value, fact.Present, spec.Allowed, field))

	case config.FieldCount:
		if fact.Present {
			appendOne(rules.Range(fact.Count, spec.Min, true, field))
			appendOne(rules.Range(fact.Count, spec.Max, false, field))
		}

	case config.FieldFlags:
		violations = append(violations, rules.Contains(fact.Flags, spec.Contains, field)...)
		violations = append(violations, rules.Excludes(fact.Flags, spec.Excludes, field)...)
	}

	return violations
}
