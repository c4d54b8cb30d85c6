package config

import (
	"regexp"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidPattern is returned when a pattern rule carries a regular
	// expression that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidOccurrence is returned when occurrence bounds are incoherent.
	ErrInvalidOccurrence = errors.New("invalid occurrence bounds")
)

// RuleSpec is a single rule attached to one observable field of a block,
// section title, or document attribute. It is a tagged variant: only the
// constraints that are set apply; an absent constraint means "no constraint".
type RuleSpec struct {
	// Severity overrides the owning config's severity for this rule only.
	// When unset, the owning config's severity applies.
	Severity Severity `json:"severity,omitempty" koanf:"severity" yaml:"severity,omitempty"`

	// Required constrains presence: true requires the field, false forbids it.
	Required *bool `json:"required,omitempty" koanf:"required" yaml:"required,omitempty"`

	// Pattern is a regular expression the whole value must match.
	// Matching is full-string, never substring.
	Pattern string `json:"pattern,omitempty" koanf:"pattern" yaml:"pattern,omitempty"`

	// MinLength and MaxLength bound the value length in code points.
	MinLength *int `json:"min_length,omitempty" koanf:"min_length" yaml:"min_length,omitempty"`
	MaxLength *int `json:"max_length,omitempty" koanf:"max_length" yaml:"max_length,omitempty"`

	// Min and Max bound numeric facts (line counts, column counts, pixel
	// dimensions, callout counts).
	Min *int `json:"min,omitempty" koanf:"min" yaml:"min,omitempty"`
	Max *int `json:"max,omitempty" koanf:"max" yaml:"max,omitempty"`

	// Allowed restricts the value to a closed set.
	Allowed []string `json:"allowed,omitempty" koanf:"allowed" yaml:"allowed,omitempty"`

	// Contains and Excludes constrain flag-set facts (e.g. video options):
	// every Contains entry must be present, no Excludes entry may be.
	Contains []string `json:"contains,omitempty" koanf:"contains" yaml:"contains,omitempty"`
	Excludes []string `json:"excludes,omitempty" koanf:"excludes" yaml:"excludes,omitempty"`

	compileOnce sync.Once
	compiled    *regexp.Regexp
	compileErr  error
}

// Compile validates and caches the pattern regex. Patterns are anchored so
// that they must match the entire value; substring semantics would silently
// loosen every pattern rule in the system.
func (r *RuleSpec) Compile() error {
	if r.Pattern == "" {
		return nil
	}

	r.compileOnce.Do(func() {
		re, err := regexp.Compile(`\A(?:` + r.Pattern + `)\z`)
		if err != nil {
			r.compileErr = errors.Wrapf(ErrInvalidPattern, "%q: %v", r.Pattern, err)
			return
		}

		r.compiled = re
	})

	return r.compileErr
}

// MatchString reports whether the value matches the full pattern. Patterns
// are compiled and rejected at configuration load time, so a compile failure
// cannot be reached here; an unset pattern matches everything.
func (r *RuleSpec) MatchString(value string) bool {
	if r.Pattern == "" {
		return true
	}

	if err := r.Compile(); err != nil {
		return true
	}

	return r.compiled.MatchString(value)
}

// IsZero reports whether no constraint at all is set on the spec.
func (r *RuleSpec) IsZero() bool {
	return r.Required == nil &&
		r.Pattern == "" &&
		r.MinLength == nil && r.MaxLength == nil &&
		r.Min == nil && r.Max == nil &&
		len(r.Allowed) == 0 &&
		len(r.Contains) == 0 && len(r.Excludes) == 0
}

// OccurrenceRule bounds how many times a block or section may occur within
// its scope. Exact is shorthand for Min == Max == Exact.
type OccurrenceRule struct {
	Min   *int `json:"min,omitempty" koanf:"min" yaml:"min,omitempty"`
	Max   *int `json:"max,omitempty" koanf:"max" yaml:"max,omitempty"`
	Exact *int `json:"exact,omitempty" koanf:"exact" yaml:"exact,omitempty"`
}

// Bounds returns the effective min/max bounds, expanding Exact.
// A nil bound means unbounded on that side.
func (o *OccurrenceRule) Bounds() (minBound, maxBound *int) {
	if o == nil {
		return nil, nil
	}

	if o.Exact != nil {
		return o.Exact, o.Exact
	}

	return o.Min, o.Max
}

// Validate checks that the bounds are coherent.
func (o *OccurrenceRule) Validate() error {
	if o == nil {
		return nil
	}

	if o.Exact != nil && (o.Min != nil || o.Max != nil) {
		return errors.WithMessage(ErrInvalidOccurrence, "exact is exclusive with min/max")
	}

	for _, bound := range []*int{o.Min, o.Max, o.Exact} {
		if bound != nil && *bound < 0 {
			return errors.WithMessagef(ErrInvalidOccurrence, "negative bound %d", *bound)
		}
	}

	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		return errors.WithMessagef(
			ErrInvalidOccurrence,
			"min %d greater than max %d",
			*o.Min,
			*o.Max,
		)
	}

	return nil
}
