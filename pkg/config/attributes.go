package config

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMissingAttributeName is returned when an attribute config has no name.
var ErrMissingAttributeName = errors.New("attribute name is required")

// AttributeConfig declares rules for one document-header attribute
// (":author:", ":revnumber:", ...).
type AttributeConfig struct {
	// Name is the attribute name, without the surrounding colons.
	Name string `json:"name" koanf:"name" yaml:"name"`

	// Severity is the default severity for the attribute's rule. Required.
	Severity Severity `json:"severity" koanf:"severity" yaml:"severity"`

	// Rule constrains the attribute value.
	Rule *RuleSpec `json:"rule,omitempty" koanf:"rule" yaml:"rule,omitempty"`
}

// Validate checks the config at load time.
func (a *AttributeConfig) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrMissingAttributeName
	}

	if a.Severity == SeverityUnknown {
		return errors.Wrapf(ErrMissingSeverity, "attribute %q", a.Name)
	}

	if a.Rule != nil {
		if err := a.Rule.Compile(); err != nil {
			return errors.Wrapf(err, "attribute %q", a.Name)
		}
	}

	return nil
}
