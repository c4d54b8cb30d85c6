package config

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingSeverity is returned when a config that requires a severity
	// has none. Severity is the fallback for every nested rule, so building
	// a block or section config without one is a configuration error.
	ErrMissingSeverity = errors.New("severity is required")

	// ErrUnknownBlockType is returned for an unrecognized block type name.
	ErrUnknownBlockType = errors.New("unknown block type")

	// ErrUnknownRuleField is returned when a rule names a field the block
	// kind does not expose.
	ErrUnknownRuleField = errors.New("unknown rule field")
)

// FieldType describes what shape of fact a rule field evaluates against.
type FieldType int

const (
	// FieldString facts are scalar text values (language, title, url).
	FieldString FieldType = iota

	// FieldCount facts are non-negative integers (lines, columns, width).
	FieldCount

	// FieldFlags facts are sets of boolean option names (video options).
	FieldFlags
)

// listingFields is shared by listing and literal blocks.
var listingFields = map[string]FieldType{
	"language": FieldString,
	"title":    FieldString,
	"content":  FieldString,
	"lines":    FieldCount,
	"callouts": FieldCount,
}

var quoteFields = map[string]FieldType{
	"author":  FieldString,
	"source":  FieldString,
	"content": FieldString,
	"lines":   FieldCount,
}

// blockFields maps each block kind to the rule fields it exposes. A rule on
// any other field is rejected at load time.
var blockFields = map[BlockKind]map[string]FieldType{
	BlockParagraph: {
		"lines": FieldCount,
	},
	BlockListing: listingFields,
	BlockLiteral: listingFields,
	BlockTable: {
		"columns": FieldCount,
		"rows":    FieldCount,
		"header":  FieldString,
		"caption": FieldString,
		"style":   FieldString,
	},
	BlockImage: {
		"url":    FieldString,
		"alt":    FieldString,
		"width":  FieldCount,
		"height": FieldCount,
	},
	BlockVerse: quoteFields,
	BlockQuote: quoteFields,
	BlockAdmonition: {
		"type":            FieldString,
		"title":           FieldString,
		"content":         FieldString,
		"lines":           FieldCount,
		"icon":            FieldString,
		"typeOccurrences": FieldCount,
	},
	BlockPass: {
		"type":    FieldString,
		"reason":  FieldString,
		"content": FieldString,
	},
	BlockVideo: {
		"url":     FieldString,
		"poster":  FieldString,
		"width":   FieldCount,
		"height":  FieldCount,
		"options": FieldFlags,
		"caption": FieldString,
	},
}

// FieldsFor returns the rule fields a block kind exposes.
func FieldsFor(kind BlockKind) map[string]FieldType {
	return blockFields[kind]
}

// BlockConfig declares the rules for one block kind within a scope (the
// document preamble or a section). Immutable after construction; shared
// read-only across a whole validation run.
type BlockConfig struct {
	// Type is the block kind name ("paragraph", "listing", "table", ...).
	Type string `json:"type" koanf:"type" yaml:"type"`

	// Name is an optional user label. Two differently-named configs for the
	// same kind are counted independently in occurrence checks.
	Name string `json:"name,omitempty" koanf:"name" yaml:"name,omitempty"`

	// Severity is the default severity for every rule on this block that
	// does not override it. Required.
	Severity Severity `json:"severity" koanf:"severity" yaml:"severity"`

	// Occurrence bounds how many matching blocks may occur in the scope.
	Occurrence *OccurrenceRule `json:"occurrence,omitempty" koanf:"occurrence" yaml:"occurrence,omitempty"`

	// Rules maps field names (see FieldsFor) to their constraints.
	Rules map[string]*RuleSpec `json:"rules,omitempty" koanf:"rules" yaml:"rules,omitempty"`
}

// Kind resolves the configured type name. Returns BlockUnknown for
// unrecognized names; Validate rejects those at load time.
func (c *BlockConfig) Kind() BlockKind {
	kind, _ := ParseBlockKind(c.Type)

	return kind
}

// Label returns the name used in diagnostics: the user label when set,
// otherwise the kind name.
func (c *BlockConfig) Label() string {
	if c.Name != "" {
		return c.Name
	}

	return c.Kind().String()
}

// Validate checks the config at load time: the type must resolve, severity
// must be set, occurrence bounds must be coherent, every rule must name a
// known field and carry a compilable pattern.
func (c *BlockConfig) Validate() error {
	kind, ok := ParseBlockKind(c.Type)
	if !ok {
		return errors.Wrapf(ErrUnknownBlockType, "%q", c.Type)
	}

	if c.Severity == SeverityUnknown {
		return errors.Wrapf(ErrMissingSeverity, "block %q", c.Label())
	}

	if err := c.Occurrence.Validate(); err != nil {
		return errors.Wrapf(err, "block %q", c.Label())
	}

	fields := FieldsFor(kind)

	for field, spec := range c.Rules {
		if spec == nil {
			continue
		}

		if _, known := fields[field]; !known {
			return errors.Wrapf(
				ErrUnknownRuleField,
				"%q on block type %q",
				field,
				c.Type,
			)
		}

		if err := spec.Compile(); err != nil {
			return errors.Wrapf(err, "block %q, field %q", c.Label(), field)
		}
	}

	return nil
}
