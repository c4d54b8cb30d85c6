package report

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/pkg/config"
)

// JSONReporter renders the result as a single JSON document on stdout, for
// editor integrations and CI pipelines.
type JSONReporter struct{}

// NewJSONReporter creates a JSONReporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// jsonFinding is the wire form of one finding.
type jsonFinding struct {
	Severity  string `json:"severity"`
	Rule      string `json:"rule"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Attribute string `json:"attribute,omitempty"`
	Actual    string `json:"actual,omitempty"`
	Expected  string `json:"expected,omitempty"`
}

// jsonSummary is the wire form of the run summary.
type jsonSummary struct {
	Errors    int   `json:"errors"`
	Warnings  int   `json:"warnings"`
	Infos     int   `json:"infos"`
	Files     int   `json:"files"`
	ElapsedMS int64 `json:"elapsed_ms"`
}

// jsonReport is the full wire document.
type jsonReport struct {
	Findings []jsonFinding `json:"findings"`
	Summary  jsonSummary   `json:"summary"`
}

// Render writes the result as indented JSON.
func (*JSONReporter) Render(w io.Writer, result *validation.Result) error {
	findings := make([]jsonFinding, 0, result.Total())

	for _, path := range result.Files() {
		messages := result.ByFile()[path]

		sorted := make([]validation.Message, len(messages))
		copy(sorted, messages)

		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Location.Line < sorted[j].Location.Line
		})

		for _, msg := range sorted {
			findings = append(findings, jsonFinding{
				Severity:  msg.Severity.String(),
				Rule:      msg.RuleID,
				Message:   msg.Text,
				Path:      msg.Location.Path,
				Line:      msg.Location.Line,
				Attribute: msg.Attribute,
				Actual:    msg.Actual,
				Expected:  msg.Expected,
			})
		}
	}

	doc := jsonReport{
		Findings: findings,
		Summary: jsonSummary{
			Errors:    result.Count(config.SeverityError),
			Warnings:  result.Count(config.SeverityWarning),
			Infos:     result.Count(config.SeverityInfo),
			Files:     len(result.Files()),
			ElapsedMS: result.Elapsed().Milliseconds(),
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(doc)
}
