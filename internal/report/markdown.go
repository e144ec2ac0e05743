package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/satlens/satlens/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeMetrics(md, report)
	w.writeParameters(md, report)
	w.writeChart(md, report)
	w.writeNotices(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the heading and the escaped log comments.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Solver Run Summary")
	md.PlainText("")

	for _, c := range report.Comments {
		md.Blockquote(escapeComment(c))
	}
	if len(report.Comments) > 0 {
		md.PlainText("")
	}
}

// writeMetrics writes the metric table and a warning alert if any metric
// is flagged.
func (w *MarkdownWriter) writeMetrics(md *markdown.Markdown, report *model.Report) {
	rows := make([][]string, 0, len(report.Metrics))
	var warnings []string
	for _, m := range report.Metrics {
		value := m.Value.String()
		if m.Delta != "" {
			value += " (" + m.Delta + ")"
		}
		rows = append(rows, []string{m.Label, value, m.Help})

		if m.Warn {
			warnings = append(warnings, m.Label)
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value", "Note"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(warnings) > 0 {
		md.Warningf("Check the flagged metrics: %s.", strings.Join(warnings, ", "))
		md.PlainText("")
	}
}

// writeParameters writes the non-default solver parameters as JSON.
func (w *MarkdownWriter) writeParameters(md *markdown.Markdown, report *model.Report) {
	if len(report.Parameters) == 0 {
		return
	}

	md.H2("Parameters")
	md.PlainText("")
	md.PlainText("*The solver was set up with the following non-default parameters:*")
	md.PlainText("")

	// json.Marshal sorts map keys, keeping the section deterministic.
	data, err := json.MarshalIndent(report.Parameters, "", "  ")
	if err != nil {
		// Parameters came from decoded input, so this only fires on
		// values json cannot represent. Skip the section in that case.
		return
	}
	md.CodeBlocks(markdown.SyntaxHighlightJSON, string(data))
	md.PlainText("")
	md.PlainText("*See the [parameter documentation](https://github.com/google/or-tools/blob/stable/ortools/sat/sat_parameters.proto) for their meaning.*")
	md.PlainText("")
}

// writeChart writes the search progression as a mermaid xychart.
//
// mermaid has no native two-series legend for xychart, so the objective and
// bound trajectories are emitted as two line series in document order.
func (w *MarkdownWriter) writeChart(md *markdown.Markdown, report *model.Report) {
	if report.Chart == nil {
		return
	}

	md.H2("Search Progress")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, mermaidXYChart(report.Chart))
	md.PlainText("")
	md.PlainText("*Series: best objective, then best proven bound.*")
	md.PlainText("")
}

// writeNotices writes the advisory notices as alerts.
func (w *MarkdownWriter) writeNotices(md *markdown.Markdown, report *model.Report) {
	for _, n := range report.Notices {
		md.Note(n)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by satlens*")
}

// mermaidXYChart renders a Chart as mermaid xychart-beta markup.
func mermaidXYChart(c *model.Chart) string {
	var sb strings.Builder
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"" + c.Title + "\"\n")

	sb.WriteString("    x-axis \"" + c.XLabel + "\" [")
	for i, p := range c.Objective {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatFloat(p.X))
	}
	sb.WriteString("]\n")

	sb.WriteString("    y-axis \"" + c.YLabel + "\"\n")

	writeSeries := func(points []model.Point) {
		sb.WriteString("    line [")
		for i, p := range points {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatFloat(p.Y))
		}
		sb.WriteString("]\n")
	}
	writeSeries(c.Objective)
	writeSeries(c.Bound)

	return strings.TrimRight(sb.String(), "\n")
}

// escapeComment neutralizes markdown control characters in user comments,
// matching the escaping the upstream viewer applies: backslashes are
// stripped and square brackets become emphasized literals.
func escapeComment(s string) string {
	s = strings.ReplaceAll(s, "\\", "")
	s = strings.ReplaceAll(s, "[", `\[*`)
	s = strings.ReplaceAll(s, "]", `*\]`)
	return s
}
