package validation

import "github.com/smykla-skalski/adoclint/pkg/config"

// Resolve applies the severity cascade: a rule's own severity wins, the
// owning config's severity is the fallback. There is no third level; configs
// without a severity are rejected at load time, so fallback is always set by
// the time validation runs.
func Resolve(local, fallback config.Severity) config.Severity {
	if local != config.SeverityUnknown {
		return local
	}

	return fallback
}
