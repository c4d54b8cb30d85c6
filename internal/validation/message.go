// Package validation holds the diagnostic model and the per-document mutable
// state of a validation pass: typed messages, the immutable result, the
// occurrence-tracking context, and severity resolution.
package validation

import (
	"fmt"

	"github.com/smykla-skalski/adoclint/pkg/config"
)

// Location points at the source position of a finding. Line is 1-based and
// always at least 1.
type Location struct {
	Path string `json:"path"`
	Line int    `json:"line"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}

// Message is a single validation finding. Immutable once created.
type Message struct {
	// Severity is the resolved diagnostic level.
	Severity config.Severity `json:"severity"`

	// RuleID is the stable dotted identifier of the violated check,
	// e.g. "listing.language.allowed". External tooling filters on these,
	// so they must not change across versions.
	RuleID string `json:"rule_id"`

	// Text is the human-readable description.
	Text string `json:"message"`

	// Location is where the finding was produced.
	Location Location `json:"location"`

	// Attribute names the node attribute involved, when one was.
	Attribute string `json:"attribute,omitempty"`

	// Actual and Expected describe the violating value and the constraint.
	Actual   string `json:"actual,omitempty"`
	Expected string `json:"expected,omitempty"`
}

func (m Message) String() string {
	return fmt.Sprintf("%s: [%s] %s: %s", m.Location, m.Severity, m.RuleID, m.Text)
}
