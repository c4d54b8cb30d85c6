// Package block implements the per-kind block validators. Each validator
// extracts observable facts from a node and runs the configured rules over
// them through one shared, data-driven evaluation loop; only fact extraction
// and the few genuinely kind-specific checks live in per-kind files.
package block

import (
	"strconv"
	"strings"
)

// Fact is one observable value extracted from a node. Exactly one of Value,
// Count, or Flags is meaningful, matching the field's declared type.
type Fact struct {
	// Present reports whether the fact exists on the node at all.
	Present bool

	// Value is the scalar text form.
	Value string

	// Count is the numeric form for count facts.
	Count int

	// Flags is the set form for flag facts.
	Flags []string

	// Attribute names the node attribute the fact came from, for diagnostics.
	Attribute string
}

// Facts maps field names to extracted facts.
type Facts map[string]Fact

// stringFact builds a trimmed scalar fact. Empty values count as absent:
// most required-style rules flag exactly that.
func stringFact(value string) Fact {
	value = strings.TrimSpace(value)

	return Fact{Present: value != "", Value: value}
}

// attrFact builds a trimmed scalar fact from a node attribute.
func attrFact(value string, ok bool, attribute string) Fact {
	fact := stringFact(value)
	fact.Present = fact.Present && ok
	fact.Attribute = attribute

	return fact
}

// rawFact builds a scalar fact that keeps its whitespace. Content length
// rules operate on the raw character count.
func rawFact(value string) Fact {
	return Fact{Present: strings.TrimSpace(value) != "", Value: value}
}

// countFact builds a numeric fact.
func countFact(n int) Fact {
	return Fact{Present: true, Count: n}
}

// attrCountFact parses a numeric attribute. Unparsable values are treated as
// absent rather than failing the run.
func attrCountFact(value string, ok bool, attribute string) Fact {
	if !ok {
		return Fact{Attribute: attribute}
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return Fact{Attribute: attribute}
	}

	return Fact{Present: true, Count: n, Attribute: attribute}
}

// flagsFact builds a set fact from a comma-separated attribute value.
func flagsFact(value string, ok bool, attribute string) Fact {
	fact := Fact{Attribute: attribute}
	if !ok {
		return fact
	}

	for part := range strings.SplitSeq(value, ",") {
		if flag := strings.TrimSpace(part); flag != "" {
			fact.Flags = append(fact.Flags, flag)
		}
	}

	fact.Present = len(fact.Flags) > 0

	return fact
}
