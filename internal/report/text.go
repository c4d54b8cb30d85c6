package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/hako/durafmt"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/smykla-skalski/adoclint/internal/color"
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/pkg/config"
)

// TextReporter renders findings for terminal consumption: one line per
// finding, grouped by file and sorted by line, followed by a severity
// summary table and a closing summary line.
type TextReporter struct {
	theme color.Theme
}

// NewTextReporter creates a TextReporter.
func NewTextReporter(theme color.Theme) *TextReporter {
	return &TextReporter{theme: theme}
}

// Render writes the result to w.
func (t *TextReporter) Render(w io.Writer, result *validation.Result) error {
	if result.Total() == 0 {
		_, err := fmt.Fprintln(w, t.theme.Muted.Render("No problems found."))

		return err
	}

	for _, path := range result.Files() {
		if err := t.renderFile(w, path, result.ByFile()[path]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, t.renderSummaryTable(result)); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, t.renderSummaryLine(result))

	return err
}

// renderFile writes the findings for one file, sorted by line.
func (t *TextReporter) renderFile(
	w io.Writer,
	path string,
	messages []validation.Message,
) error {
	sorted := make([]validation.Message, len(messages))
	copy(sorted, messages)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Location.Line < sorted[j].Location.Line
	})

	for _, msg := range sorted {
		if _, err := fmt.Fprintln(w, t.renderMessage(msg)); err != nil {
			return err
		}
	}

	return nil
}

// renderMessage formats one finding line:
//
//	path:line: severity: text (actual: ..., expected: ...) [rule.id]
func (t *TextReporter) renderMessage(msg validation.Message) string {
	var sb strings.Builder

	location := fmt.Sprintf("%s:%d:", msg.Location.Path, msg.Location.Line)
	sb.WriteString(t.theme.Location.Render(location))
	sb.WriteString(" ")

	style := t.theme.SeverityStyle(msg.Severity)
	sb.WriteString(style.Render(msg.Severity.String() + ":"))
	sb.WriteString(" ")
	sb.WriteString(msg.Text)

	if detail := formatDetail(msg); detail != "" {
		sb.WriteString(" ")
		sb.WriteString(detail)
	}

	sb.WriteString(" ")
	sb.WriteString(t.theme.RuleID.Render("[" + msg.RuleID + "]"))

	return sb.String()
}

func formatDetail(msg validation.Message) string {
	var parts []string

	if msg.Actual != "" {
		parts = append(parts, "actual: "+msg.Actual)
	}

	if msg.Expected != "" {
		parts = append(parts, "expected: "+msg.Expected)
	}

	if len(parts) == 0 {
		return ""
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// renderSummaryTable builds the per-severity count table.
func (t *TextReporter) renderSummaryTable(result *validation.Result) string {
	var buf bytes.Buffer

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	table.Header([]string{"Severity", "Count"})

	for _, sev := range []config.Severity{
		config.SeverityError,
		config.SeverityWarning,
		config.SeverityInfo,
	} {
		count := result.Count(sev)
		if count == 0 {
			continue
		}

		label := t.theme.SeverityStyle(sev).Render(sev.String())
		_ = table.Append([]string{label, fmt.Sprintf("%d", count)})
	}

	_ = table.Render()

	return strings.TrimRight(buf.String(), "\n")
}

// renderSummaryLine formats the closing line, for example:
//
//	Found 3 problems (2 errors, 1 warning) in 2 files in 12 milliseconds.
func (t *TextReporter) renderSummaryLine(result *validation.Result) string {
	var counts []string

	for _, sev := range []config.Severity{
		config.SeverityError,
		config.SeverityWarning,
		config.SeverityInfo,
	} {
		if n := result.Count(sev); n > 0 {
			counts = append(counts, english.Plural(n, sev.String(), ""))
		}
	}

	elapsed := durafmt.Parse(result.Elapsed().Round(time.Millisecond)).LimitFirstN(2)

	return fmt.Sprintf("Found %s (%s) in %s in %s.",
		english.Plural(result.Total(), "problem", ""),
		strings.Join(counts, ", "),
		english.Plural(len(result.Files()), "file", ""),
		elapsed,
	)
}
