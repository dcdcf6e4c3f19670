package report

import (
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/spelldigest/internal/database"
	"github.com/nao1215/spelldigest/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary and, when present, a table of failed probes.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	summary := model.NewSummary(run)
	w.writeSummary(md, summary)
	w.writeFailures(md, run.Failures())
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteSummary outputs a single run summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeSummary(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteHistory outputs stored runs as a Markdown table.
func (w *MarkdownWriter) WriteHistory(records []database.RunRecord) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Spelldigest Run History")
	md.PlainText("")

	if len(records) == 0 {
		md.PlainText("No runs recorded.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.FormatInt(r.ID, 10),
			r.SavedAt.Format(timeLayout),
			truncateString(r.Summary.DocumentURL, 50),
			strconv.Itoa(r.Summary.WordCount),
			strconv.Itoa(r.Summary.UnknownCount),
			strconv.Itoa(r.Summary.FailedCount),
			"`" + r.Summary.Answer + "`",
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Saved", "Document", "Words", "Unknown", "Failed", "Answer"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, s *model.Summary) {
	md.H1("Spelldigest Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Document", "`" + s.DocumentURL + "`"},
			{"Started", s.StartedAt.Format(timeLayout)},
			{"Duration", s.Duration.Round(time.Millisecond).String()},
			{"Status", statusText(s)},
			{"Answer", "`" + s.Answer + "`"},
			{"Digest", s.HashAlgorithm + ", " + orderText(s) + " order"},
		},
	})
	md.PlainText("")

	md.H2("Outcomes")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"Known", strconv.Itoa(s.KnownCount)},
			{"Unknown", strconv.Itoa(s.UnknownCount)},
			{"Failed", strconv.Itoa(s.FailedCount)},
			{"**Total**", "**" + strconv.Itoa(s.ProbeCount()) + "**"},
		},
	})
	md.PlainText("")

	if s.ProbeCount() > 0 {
		w.writePieChart(md, s)
	}
	w.writeAlert(md, s)

	md.H2("Misspelled Words")
	md.PlainText("")
	if len(s.Misspelled) == 0 {
		md.PlainText("No misspelled words.")
	} else {
		md.BulletList(s.Misspelled...)
	}
	md.PlainText("")

	if len(s.FailureReasons) > 0 {
		rows := make([][]string, 0, len(s.FailureReasons))
		for _, reason := range slices.Sorted(maps.Keys(s.FailureReasons)) {
			rows = append(rows, []string{truncateString(reason, 80), strconv.Itoa(s.FailureReasons[reason])})
		}
		md.H2("Failure Reasons")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Reason", "Count"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writePieChart writes a mermaid pie chart of the outcome distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Outcome Distribution"),
		piechart.WithShowData(true),
	)

	if s.KnownCount > 0 {
		chart.LabelAndIntValue("Known", uint64(s.KnownCount))
	}
	if s.UnknownCount > 0 {
		chart.LabelAndIntValue("Unknown", uint64(s.UnknownCount))
	}
	if s.FailedCount > 0 {
		chart.LabelAndIntValue("Failed", uint64(s.FailedCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s *model.Summary) {
	switch {
	case s.Error != "":
		md.Cautionf("The run failed: %s", s.Error)
	case s.HasFailures():
		md.Warningf(
			"%d probe(s) failed and were left out of the digest. The answer may not be reproducible.",
			s.FailedCount,
		)
	default:
		md.Tip("Every word received a definitive answer from the spell-check service.")
	}
	md.PlainText("")
}

// writeFailures lists failed probes.
func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, failures []model.Outcome) {
	if len(failures) == 0 {
		return
	}

	rows := make([][]string, len(failures))
	for i, f := range failures {
		status := "-"
		if f.StatusCode != 0 {
			status = strconv.Itoa(f.StatusCode)
		}
		rows[i] = []string{
			f.Target.Word,
			status,
			truncateString(f.ReasonText(), 60),
		}
	}

	md.H2("Failed Probes")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Word", "Status", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [spelldigest](https://github.com/nao1215/spelldigest)*")
}

// truncateString truncates a string to maxLen bytes with an ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
