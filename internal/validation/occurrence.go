package validation

import (
	"strconv"

	"github.com/smykla-skalski/adoclint/pkg/config"
)

// CheckOccurrences is the post-pass comparing final context counts against
// configured occurrence bounds. It runs exactly once per config entry, after
// the traversal completes — never mid-traversal, since a later sibling could
// still satisfy a minimum.
//
// Bounds beneath a section that never matched are not reported: the missing
// parent is the finding, not its unreachable children.
func CheckOccurrences(doc *config.DocumentConfig, ctx *Context) []Message {
	if doc == nil {
		return nil
	}

	var messages []Message

	for _, block := range doc.Blocks {
		messages = append(messages, checkBlockOccurrence("", block, ctx)...)
	}

	for _, section := range doc.Sections {
		messages = append(messages, checkSectionOccurrence("", section, ctx)...)
	}

	return messages
}

func checkBlockOccurrence(
	scope string,
	cfg *config.BlockConfig,
	ctx *Context,
) []Message {
	minBound, maxBound := cfg.Occurrence.Bounds()
	if minBound == nil && maxBound == nil {
		return nil
	}

	key := BlockKey(scope, cfg)

	return boundViolations(
		key,
		ctx,
		cfg.Kind().String(),
		"block: "+cfg.Label(),
		cfg.Severity,
		minBound,
		maxBound,
		cfg.Occurrence.Exact != nil,
	)
}

func checkSectionOccurrence(
	scope string,
	cfg *config.SectionConfig,
	ctx *Context,
) []Message {
	var messages []Message

	minBound, maxBound := cfg.Occurrence.Bounds()
	key := SectionKey(scope, cfg)

	if minBound != nil || maxBound != nil {
		exact := cfg.Occurrence != nil && cfg.Occurrence.Exact != nil

		messages = append(messages, boundViolations(
			key,
			ctx,
			"section",
			"section: "+cfg.Name,
			cfg.Severity,
			minBound,
			maxBound,
			exact,
		)...)
	}

	// Children are only checked when the section itself occurred.
	if ctx.Count(key) == 0 {
		return messages
	}

	childScope := ChildScope(scope, cfg.Name)

	for _, block := range cfg.Blocks {
		messages = append(messages, checkBlockOccurrence(childScope, block, ctx)...)
	}

	for _, sub := range cfg.Sections {
		messages = append(messages, checkSectionOccurrence(childScope, sub, ctx)...)
	}

	return messages
}

// boundViolations emits at most one too-few and one too-many finding for a
// counted key.
func boundViolations(
	key OccurrenceKey,
	ctx *Context,
	ruleKind string,
	label string,
	severity config.Severity,
	minBound, maxBound *int,
	exact bool,
) []Message {
	count := ctx.Count(key)

	var messages []Message

	if minBound != nil && count < *minBound {
		messages = append(messages, Message{
			Severity: severity,
			RuleID:   ruleKind + ".occurrence.min",
			Text:     "Too few occurrences of " + label,
			Location: ctx.Location(ctx.First(key)),
			Actual:   strconv.Itoa(count),
			Expected: expectedBound("At least", *minBound, exact),
		})
	}

	if maxBound != nil && count > *maxBound {
		messages = append(messages, Message{
			Severity: severity,
			RuleID:   ruleKind + ".occurrence.max",
			Text:     "Too many occurrences of " + label,
			Location: ctx.Location(ctx.Last(key)),
			Actual:   strconv.Itoa(count),
			Expected: expectedBound("At most", *maxBound, exact),
		})
	}

	return messages
}

func expectedBound(prefix string, bound int, exact bool) string {
	if exact {
		return "Exactly " + strconv.Itoa(bound)
	}

	return prefix + " " + strconv.Itoa(bound)
}
