// Package report renders validation results for human and machine
// consumption.
package report

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/adoclint/internal/color"
	"github.com/smykla-skalski/adoclint/internal/validation"
)

// ErrUnknownFormat is returned for an unrecognized report format.
var ErrUnknownFormat = errors.New("unknown report format")

// Reporter renders a validation result to a writer.
type Reporter interface {
	// Render writes the result. It returns an error only when writing
	// fails.
	Render(w io.Writer, result *validation.Result) error
}

// New creates a Reporter for the given format ("text" or "json").
//
//nolint:ireturn // factory returns the interface by design of the callers
func New(format string, theme color.Theme) (Reporter, error) {
	switch format {
	case "", "text":
		return NewTextReporter(theme), nil
	case "json":
		return NewJSONReporter(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}
