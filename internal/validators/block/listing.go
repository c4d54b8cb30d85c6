package block

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// calloutMarker matches AsciiDoc callout markers at the end of a line.
var calloutMarker = regexp.MustCompile(`<(\d+)>\s*$`)

// ListingValidator validates listing and literal blocks. A literal block
// without a declared language is still a listing for rule purposes.
type ListingValidator struct {
	validators.BaseValidator
}

// NewListingValidator creates a ListingValidator.
func NewListingValidator(log logger.Logger) *ListingValidator {
	return &ListingValidator{
		BaseValidator: *validators.NewBaseValidator("validate-listing", log),
	}
}

// Kind returns the block kind this validator evaluates.
func (*ListingValidator) Kind() config.BlockKind {
	return config.BlockListing
}

// Validate checks language, title, content, line, and callout rules.
func (v *ListingValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, config.BlockListing)

	content := node.Text()
	lines := node.Lines()

	language, hasLanguage := node.Attr("language")

	facts := Facts{
		"language": attrFact(language, hasLanguage, "language"),
		"title":    stringFact(node.Title),
		"content":  rawFact(content),
		"lines":    countFact(len(lines)),
		"callouts": countFact(countCallouts(lines)),
	}

	messages := evalRules(cfg.Kind(), node, cfg, vctx, facts)
	messages = append(messages, v.checkLineLength(node, cfg, vctx, lines)...)

	return messages
}

// checkLineLength applies a per-line length bound configured via the
// max_length constraint on the "lines" field. One finding per run, naming
// the first offending line, keeps reports readable.
func (*ListingValidator) checkLineLength(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
	lines []string,
) []validation.Message {
	spec := cfg.Rules["lines"]
	if spec == nil || spec.MaxLength == nil {
		return nil
	}

	for i, line := range lines {
		length := len([]rune(line))
		if length <= *spec.MaxLength {
			continue
		}

		return []validation.Message{{
			Severity: validation.Resolve(spec.Severity, cfg.Severity),
			RuleID:   cfg.Kind().String() + ".lines.maxLength",
			Text:     "listing line " + strconv.Itoa(i+1) + " is too long",
			Location: vctx.Location(node),
			Actual:   strconv.Itoa(length),
			Expected: "at most " + strconv.Itoa(*spec.MaxLength) + " characters",
		}}
	}

	return nil
}

// countCallouts counts lines carrying a callout marker.
func countCallouts(lines []string) int {
	count := 0

	for _, line := range lines {
		if calloutMarker.MatchString(strings.TrimRight(line, " \t")) {
			count++
		}
	}

	return count
}
