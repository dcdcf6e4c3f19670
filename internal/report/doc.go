// Package report provides run output in several formats.
//
// This package contains writers for different output formats:
//   - TextWriter: the answer line, plus plain-text summaries and history
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: Markdown with a mermaid outcome chart
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
