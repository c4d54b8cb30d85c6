// Package config provides the declarative rule schema for adoclint.
package config

import (
	"github.com/cockroachdb/errors"
)

//go:generate enumer -type=Severity -trimprefix=Severity -transform=lower -json -text -yaml

// ErrInvalidSeverity is returned when an invalid severity value is provided.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity represents the diagnostic level of a validation finding.
// Ordering is significant: Info < Warning < Error.
type Severity int

const (
	// SeverityUnknown represents an unset severity level.
	SeverityUnknown Severity = iota

	// SeverityInfo indicates an informational finding.
	SeverityInfo

	// SeverityWarning indicates a finding that should be fixed but does not
	// fail the run.
	SeverityWarning

	// SeverityError indicates a finding that fails the run.
	SeverityError
)

// ShouldBlock returns true if the severity maps to a non-zero exit code.
func (s Severity) ShouldBlock() bool {
	return s == SeverityError
}

// AtLeast reports whether s is at least as severe as the threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s >= threshold
}

// ParseSeverity parses a string into a Severity value.
func ParseSeverity(s string) (Severity, error) {
	severity, err := SeverityString(s)
	if err != nil {
		return SeverityUnknown,
			errors.Wrapf(
				ErrInvalidSeverity,
				"%q, must be %q, %q, or %q",
				s,
				SeverityInfo.String(),
				SeverityWarning.String(),
				SeverityError.String(),
			)
	}

	return severity, nil
}
