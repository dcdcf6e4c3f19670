package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/spelldigest/internal/report"
)

// newReportWriter returns the writer for the selected format.
func newReportWriter(w io.Writer, jsonOutput, markdownOutput bool) report.Writer {
	switch {
	case jsonOutput:
		return report.NewJSONWriter(w, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case markdownOutput:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewTextWriter(w)
	}
}

// openOutput returns the report destination: path if set, stdout otherwise.
// The returned close function must always be called.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports list the document URL, which may carry credentials.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // user-chosen output path
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
