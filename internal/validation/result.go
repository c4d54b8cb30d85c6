package validation

import (
	"sort"
	"time"

	"github.com/smykla-skalski/adoclint/pkg/config"
)

// Result is the immutable outcome of a validation run: the ordered findings
// plus derived views. Built once via ResultBuilder, read-only afterwards.
type Result struct {
	messages   []Message
	bySeverity map[config.Severity][]Message
	byFile     map[string][]Message
	elapsed    time.Duration
}

// Messages returns all findings in the order they were produced.
func (r *Result) Messages() []Message {
	return r.messages
}

// BySeverity returns the findings at exactly the given severity.
func (r *Result) BySeverity(sev config.Severity) []Message {
	return r.bySeverity[sev]
}

// ByFile returns the findings grouped by file path.
func (r *Result) ByFile() map[string][]Message {
	return r.byFile
}

// ByLine returns the findings for one file grouped by line.
func (r *Result) ByLine(path string) map[int][]Message {
	byLine := make(map[int][]Message)

	for _, msg := range r.byFile[path] {
		byLine[msg.Location.Line] = append(byLine[msg.Location.Line], msg)
	}

	return byLine
}

// Files returns the file paths with findings, sorted.
func (r *Result) Files() []string {
	files := make([]string, 0, len(r.byFile))

	for path := range r.byFile {
		files = append(files, path)
	}

	sort.Strings(files)

	return files
}

// Count returns the number of findings at the given severity.
func (r *Result) Count(sev config.Severity) int {
	return len(r.bySeverity[sev])
}

// Total returns the total number of findings.
func (r *Result) Total() int {
	return len(r.messages)
}

// Elapsed returns how long the run took.
func (r *Result) Elapsed() time.Duration {
	return r.elapsed
}

// HasAtLeast reports whether any finding reaches the given severity.
func (r *Result) HasAtLeast(threshold config.Severity) bool {
	for _, msg := range r.messages {
		if msg.Severity.AtLeast(threshold) {
			return true
		}
	}

	return false
}

// ResultBuilder accumulates messages during a run and freezes them into a
// Result. It is confined to one call stack and not safe for concurrent use.
type ResultBuilder struct {
	messages []Message
	started  time.Time
}

// NewResultBuilder creates a builder and starts the run clock.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{started: time.Now()}
}

// Add appends findings to the result.
func (b *ResultBuilder) Add(messages ...Message) *ResultBuilder {
	b.messages = append(b.messages, messages...)

	return b
}

// Build freezes the accumulated messages into an immutable Result.
func (b *ResultBuilder) Build() *Result {
	result := &Result{
		messages:   b.messages,
		bySeverity: make(map[config.Severity][]Message),
		byFile:     make(map[string][]Message),
		elapsed:    time.Since(b.started),
	}

	for _, msg := range b.messages {
		result.bySeverity[msg.Severity] = append(result.bySeverity[msg.Severity], msg)
		result.byFile[msg.Location.Path] = append(result.byFile[msg.Location.Path], msg)
	}

	return result
}

// Merge combines several results into one, preserving message order and
// taking the longest elapsed time. Used when independent documents are
// validated in parallel.
func Merge(results ...*Result) *Result {
	merged := &Result{
		bySeverity: make(map[config.Severity][]Message),
		byFile:     make(map[string][]Message),
	}

	for _, r := range results {
		if r == nil {
			continue
		}

		merged.messages = append(merged.messages, r.messages...)

		if r.elapsed > merged.elapsed {
			merged.elapsed = r.elapsed
		}
	}

	for _, msg := range merged.messages {
		merged.bySeverity[msg.Severity] = append(merged.bySeverity[msg.Severity], msg)
		merged.byFile[msg.Location.Path] = append(merged.byFile[msg.Location.Path], msg)
	}

	return merged
}
