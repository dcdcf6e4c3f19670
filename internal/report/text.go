package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nao1215/spelldigest/internal/database"
	"github.com/nao1215/spelldigest/internal/model"
)

// TextWriter outputs plain text. For a run it prints only the answer line,
// which is the program's primary output contract.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write prints run.Answer followed by a newline.
func (w *TextWriter) Write(run *model.Run) (int, error) {
	return fmt.Fprintln(w.output, run.Answer)
}

// WriteSummary outputs a human-readable block describing one run.
func (w *TextWriter) WriteSummary(s *model.Summary) (int, error) {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                    SPELLDIGEST RUN\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Document:   %s\n", s.DocumentURL)
	fmt.Fprintf(&sb, "Started:    %s\n", s.StartedAt.Format(timeLayout))
	fmt.Fprintf(&sb, "Duration:   %s\n", s.Duration.Round(time.Millisecond))
	fmt.Fprintf(&sb, "Status:     %s\n", statusText(s))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Words:      %d\n", s.WordCount)
	fmt.Fprintf(&sb, "Known:      %d\n", s.KnownCount)
	fmt.Fprintf(&sb, "Unknown:    %d\n", s.UnknownCount)
	fmt.Fprintf(&sb, "Failed:     %d\n", s.FailedCount)
	sb.WriteString("\n")

	if len(s.FailureReasons) > 0 {
		sb.WriteString("Failure reasons:\n")
		for _, reason := range slices.Sorted(maps.Keys(s.FailureReasons)) {
			fmt.Fprintf(&sb, "  %4d  %s\n", s.FailureReasons[reason], reason)
		}
		sb.WriteString("\n")
	}

	if len(s.Misspelled) > 0 {
		fmt.Fprintf(&sb, "Misspelled (%s order):\n", orderText(s))
		for _, word := range s.Misspelled {
			fmt.Fprintf(&sb, "  - %s\n", word)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Digest (%s): %s\n", s.HashAlgorithm, s.Digest)
	fmt.Fprintf(&sb, "Answer:       %s\n", s.Answer)

	return io.WriteString(w.output, sb.String())
}

// WriteHistory outputs stored runs as an aligned table.
func (w *TextWriter) WriteHistory(records []database.RunRecord) (int, error) {
	if len(records) == 0 {
		return io.WriteString(w.output, "No runs recorded.\n")
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSAVED\tWORDS\tUNKNOWN\tFAILED\tANSWER")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n",
			r.ID,
			r.SavedAt.Format(timeLayout),
			r.Summary.WordCount,
			r.Summary.UnknownCount,
			r.Summary.FailedCount,
			r.Summary.Answer,
		)
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	return io.WriteString(w.output, sb.String())
}
