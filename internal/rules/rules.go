// Package rules provides the stateless rule primitives every validator is
// composed from. Each primitive inspects a single value against one
// constraint and returns a Violation, or nil when the constraint holds.
// Severity and location are attached by the caller.
package rules

import (
	"strconv"
	"strings"

	"github.com/smykla-skalski/adoclint/pkg/config"
)

// Violation is one failed constraint, without severity or location.
type Violation struct {
	// Constraint is the last segment of the rule id ("required", "pattern",
	// "min", ...).
	Constraint string

	// Detail is the human-readable description of the failure.
	Detail string

	// Actual and Expected describe the violating value and the constraint.
	Actual   string
	Expected string
}

// Required checks that a value is present. Absent node data is itself the
// condition this rule flags, so a missing value never errors.
func Required(present bool, what string) *Violation {
	if present {
		return nil
	}

	return &Violation{
		Constraint: "required",
		Detail:     what + " is required",
		Expected:   "present",
	}
}

// Forbidden checks that a value is absent.
func Forbidden(present bool, what string) *Violation {
	if !present {
		return nil
	}

	return &Violation{
		Constraint: "forbidden",
		Detail:     what + " is not allowed",
		Expected:   "absent",
	}
}

// Pattern checks a value against a full-string pattern. The whole value must
// match; substring semantics would silently loosen every pattern rule.
// Absent values are skipped — Required covers presence.
func Pattern(spec *config.RuleSpec, value string, present bool, what string) *Violation {
	if !present || spec.Pattern == "" {
		return nil
	}

	if spec.MatchString(value) {
		return nil
	}

	return &Violation{
		Constraint: "pattern",
		Detail:     what + " does not match the required pattern",
		Actual:     value,
		Expected:   spec.Pattern,
	}
}

// Length checks code-point length bounds on a value. The caller decides
// whether the value arrives trimmed (titles, attributes) or raw (content).
func Length(value string, present bool, minLen, maxLen *int, what string) *Violation {
	if !present || (minLen == nil && maxLen == nil) {
		return nil
	}

	length := len([]rune(value))

	if minLen != nil && length < *minLen {
		return &Violation{
			Constraint: "minLength",
			Detail:     what + " is too short",
			Actual:     strconv.Itoa(length),
			Expected:   "at least " + strconv.Itoa(*minLen) + " characters",
		}
	}

	if maxLen != nil && length > *maxLen {
		return &Violation{
			Constraint: "maxLength",
			Detail:     what + " is too long",
			Actual:     strconv.Itoa(length),
			Expected:   "at most " + strconv.Itoa(*maxLen) + " characters",
		}
	}

	return nil
}

// Range checks numeric bounds on a count fact. Min and max violations are
// reported separately so their rule ids stay distinct.
func Range(value int, bound *int, isMin bool, what string) *Violation {
	if bound == nil {
		return nil
	}

	if isMin {
		if value >= *bound {
			return nil
		}

		return &Violation{
			Constraint: "min",
			Detail:     what + " is below the minimum",
			Actual:     strconv.Itoa(value),
			Expected:   "at least " + strconv.Itoa(*bound),
		}
	}

	if value <= *bound {
		return nil
	}

	return &Violation{
		Constraint: "max",
		Detail:     what + " exceeds the maximum",
		Actual:     strconv.Itoa(value),
		Expected:   "at most " + strconv.Itoa(*bound),
	}
}

// Allowed checks a value against a closed set. Comparison is exact.
func Allowed(value string, present bool, allowed []string, what string) *Violation {
	if !present || len(allowed) == 0 {
		return nil
	}

	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}

	return &Violation{
		Constraint: "allowed",
		Detail:     what + " is not in the allowed set",
		Actual:     value,
		Expected:   "one of [" + strings.Join(allowed, ", ") + "]",
	}
}

// Contains checks that every wanted flag is present in the set.
// Returns one violation per missing flag.
func Contains(set []string, wanted []string, what string) []*Violation {
	var violations []*Violation

	for _, flag := range wanted {
		if !containsString(set, flag) {
			violations = append(violations, &Violation{
				Constraint: "required",
				Detail:     what + " must include " + strconv.Quote(flag),
				Actual:     strings.Join(set, ","),
				Expected:   flag,
			})
		}
	}

	return violations
}

// Excludes checks that no forbidden flag is present in the set.
// Returns one violation per offending flag.
func Excludes(set []string, forbidden []string, what string) []*Violation {
	var violations []*Violation

	for _, flag := range forbidden {
		if containsString(set, flag) {
			violations = append(violations, &Violation{
				Constraint: "forbidden",
				Detail:     what + " must not include " + strconv.Quote(flag),
				Actual:     flag,
				Expected:   "absent",
			})
		}
	}

	return violations
}

func containsString(set []string, s string) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}

	return false
}
