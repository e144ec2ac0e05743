// Package report renders assembled reports for output.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text output for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//   - JSONWriter: structured JSON output for tool integration
//
// Design decision: rendering is separated from report synthesis (the
// summary package) so that the core stays headless and testable. Writers
// are stateless consumers of the Report value: every metric arrives
// renderable, including the explicit absent sentinel, so no writer needs to
// know which log blocks existed.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
