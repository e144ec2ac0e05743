package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/satlens/satlens/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the help text under each metric.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with metric help texts.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeMetrics(&sb, report)
	w.writeParameters(&sb, report)
	w.writeChart(&sb, report)
	w.writeNotices(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner and log comments.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                       SOLVER RUN SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	for _, c := range report.Comments {
		sb.WriteString(fmt.Sprintf("> %s\n", c))
	}
	if len(report.Comments) > 0 {
		sb.WriteString("\n")
	}
}

// writeMetrics writes the metric table.
func (w *SimpleWriter) writeMetrics(sb *strings.Builder, report *model.Report) {
	width := 0
	for _, m := range report.Metrics {
		if len(m.Label) > width {
			width = len(m.Label)
		}
	}

	for _, m := range report.Metrics {
		value := m.Value.String()
		if m.Delta != "" {
			value += " (" + m.Delta + ")"
		}
		marker := " "
		if m.Warn {
			marker = "!"
		}
		sb.WriteString(fmt.Sprintf("%s %-*s  %s\n", marker, width+1, m.Label+":", value))
		if w.verbose && m.Help != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", m.Help))
		}
	}
	sb.WriteString("\n")
}

// writeParameters writes the non-default solver parameters.
func (w *SimpleWriter) writeParameters(sb *strings.Builder, report *model.Report) {
	if len(report.Parameters) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PARAMETERS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	// Sort for deterministic output
	keys := make([]string, 0, len(report.Parameters))
	for k := range report.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s = %v\n", k, report.Parameters[k]))
	}
	sb.WriteString("\n")
}

// writeChart writes the search progression as a plain table.
func (w *SimpleWriter) writeChart(sb *strings.Builder, report *model.Report) {
	if report.Chart == nil {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(report.Chart.Title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  %12s  %12s  %12s\n", report.Chart.XLabel, "objective", "bound"))
	for i, p := range report.Chart.Objective {
		bound := ""
		if i < len(report.Chart.Bound) {
			bound = formatFloat(report.Chart.Bound[i].Y)
		}
		sb.WriteString(fmt.Sprintf("  %12s  %12s  %12s\n",
			formatFloat(p.X), formatFloat(p.Y), bound))
	}
	sb.WriteString("\n")
}

// writeNotices writes the advisory notices.
func (w *SimpleWriter) writeNotices(sb *strings.Builder, report *model.Report) {
	for _, n := range report.Notices {
		sb.WriteString(fmt.Sprintf("[i] %s\n", n))
	}
	if len(report.Notices) > 0 {
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by satlens\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// formatFloat renders a float in its shortest exact form.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
