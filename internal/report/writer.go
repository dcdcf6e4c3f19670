package report

import (
	"io"

	"github.com/nao1215/spelldigest/internal/database"
	"github.com/nao1215/spelldigest/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the result of a completed run.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)

	// WriteSummary outputs a single run summary, e.g. one loaded from history.
	WriteSummary(summary *model.Summary) (int, error)

	// WriteHistory outputs a list of stored runs.
	WriteHistory(records []database.RunRecord) (int, error)
}

// MultiWriter writes to multiple Writers in turn and stops on the first
// error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the run to all configured Writers.
// Returns the total bytes written across all writers.
func (m *MultiWriter) Write(run *model.Run) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.Write(run) })
}

// WriteSummary outputs the summary to all configured Writers.
func (m *MultiWriter) WriteSummary(summary *model.Summary) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteSummary(summary) })
}

// WriteHistory outputs the history to all configured Writers.
func (m *MultiWriter) WriteHistory(records []database.RunRecord) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteHistory(records) })
}

func (m *MultiWriter) each(write func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := write(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// timeLayout is used for every human-readable timestamp.
const timeLayout = "2006-01-02 15:04:05 MST"

// statusText describes how a run ended.
func statusText(s *model.Summary) string {
	switch {
	case s.Error != "":
		return "ERROR - " + s.Error
	case s.HasFailures():
		return "Complete with failures"
	default:
		return "Complete"
	}
}

// orderText describes the order the words were digested in.
func orderText(s *model.Summary) string {
	if s.Sorted {
		return "sorted"
	}
	return "completion"
}
