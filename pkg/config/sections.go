package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingSectionName is returned when a section config has no name.
	ErrMissingSectionName = errors.New("section name is required")

	// ErrInvalidTitleRule is returned when a title rule declares both an
	// exact match and a pattern.
	ErrInvalidTitleRule = errors.New("title rule must set either exact or pattern, not both")
)

// TitleRule matches a section or document title either by exact string
// equality or by a full-string regular expression.
type TitleRule struct {
	// Exact requires the title to equal this string (after trimming).
	Exact string `json:"exact,omitempty" koanf:"exact" yaml:"exact,omitempty"`

	// Pattern requires the title to match this regex in full.
	Pattern string `json:"pattern,omitempty" koanf:"pattern" yaml:"pattern,omitempty"`

	// Severity overrides the owning section's severity for title findings.
	Severity Severity `json:"severity,omitempty" koanf:"severity" yaml:"severity,omitempty"`

	compileOnce sync.Once
	compiled    *regexp.Regexp
	compileErr  error
}

// Compile validates and caches the title pattern.
func (t *TitleRule) Compile() error {
	if t.Pattern == "" {
		return nil
	}

	t.compileOnce.Do(func() {
		re, err := regexp.Compile(`\A(?:` + t.Pattern + `)\z`)
		if err != nil {
			t.compileErr = errors.Wrapf(ErrInvalidPattern, "%q: %v", t.Pattern, err)
			return
		}

		t.compiled = re
	})

	return t.compileErr
}

// Matches reports whether the given title satisfies the rule. Titles are
// trimmed before comparison. A rule with neither exact nor pattern matches
// nothing.
func (t *TitleRule) Matches(title string) bool {
	if t == nil {
		return false
	}

	title = strings.TrimSpace(title)

	if t.Exact != "" {
		return title == t.Exact
	}

	if t.Pattern == "" {
		return false
	}

	if err := t.Compile(); err != nil {
		return false
	}

	return t.compiled.MatchString(title)
}

// Validate checks the rule at load time.
func (t *TitleRule) Validate() error {
	if t == nil {
		return nil
	}

	if t.Exact != "" && t.Pattern != "" {
		return ErrInvalidTitleRule
	}

	return t.Compile()
}

// SectionConfig declares the expected shape of one document section. The
// configs form a tree mirroring the expected document structure.
type SectionConfig struct {
	// Name identifies the section in diagnostics and occurrence keys.
	Name string `json:"name" koanf:"name" yaml:"name"`

	// Level is the nesting depth, 1-based. Filled in from tree position at
	// load time when omitted.
	Level int `json:"level,omitempty" koanf:"level" yaml:"level,omitempty"`

	// Order is the relative position constraint among siblings. Sections
	// without an order are unconstrained.
	Order *int `json:"order,omitempty" koanf:"order" yaml:"order,omitempty"`

	// Severity is the default severity for every rule on this section that
	// does not override it. Required.
	Severity Severity `json:"severity" koanf:"severity" yaml:"severity"`

	// Occurrence bounds how many matching sections may occur at this level.
	Occurrence *OccurrenceRule `json:"occurrence,omitempty" koanf:"occurrence" yaml:"occurrence,omitempty"`

	// Title is the matching rule for the section title.
	Title *TitleRule `json:"title,omitempty" koanf:"title" yaml:"title,omitempty"`

	// Sections are the expected subsections, in order.
	Sections []*SectionConfig `json:"sections,omitempty" koanf:"sections" yaml:"sections,omitempty"`

	// Blocks are the block rules scoped to this section.
	Blocks []*BlockConfig `json:"blocks,omitempty" koanf:"blocks" yaml:"blocks,omitempty"`
}

// Matches reports whether an actual section title satisfies this config.
// A config without a title rule falls back to case-insensitive comparison
// against its name.
func (s *SectionConfig) Matches(title string) bool {
	if s.Title != nil {
		return s.Title.Matches(title)
	}

	return strings.EqualFold(strings.TrimSpace(title), s.Name)
}

// TitleSeverity resolves the severity for title and matching findings.
func (s *SectionConfig) TitleSeverity() Severity {
	if s.Title != nil && s.Title.Severity != SeverityUnknown {
		return s.Title.Severity
	}

	return s.Severity
}

// Validate checks the config subtree at load time, assigning levels from
// tree position where omitted.
func (s *SectionConfig) Validate(level int) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingSectionName
	}

	if s.Severity == SeverityUnknown {
		return errors.Wrapf(ErrMissingSeverity, "section %q", s.Name)
	}

	if s.Level == 0 {
		s.Level = level
	}

	if err := s.Occurrence.Validate(); err != nil {
		return errors.Wrapf(err, "section %q", s.Name)
	}

	if err := s.Title.Validate(); err != nil {
		return errors.Wrapf(err, "section %q", s.Name)
	}

	for _, block := range s.Blocks {
		if err := block.Validate(); err != nil {
			return errors.Wrapf(err, "section %q", s.Name)
		}
	}

	for _, sub := range s.Sections {
		if err := sub.Validate(level + 1); err != nil {
			return err
		}
	}

	return nil
}
