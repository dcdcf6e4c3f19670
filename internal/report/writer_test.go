package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/spelldigest/internal/database"
	"github.com/nao1215/spelldigest/internal/model"
)

// createTestRun creates a completed run for testing.
func createTestRun() *model.Run {
	run := model.NewRun("https://example.com/doc.txt", "https://example.com/spelling/")
	run.StartedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	run.FinishedAt = run.StartedAt.Add(1500 * time.Millisecond)
	run.Words = []string{"cat", "teh", "boom", "xyzzy"}
	run.Outcomes = []model.Outcome{
		{Target: model.Target{Word: "cat"}, Kind: model.OutcomeKnown, StatusCode: 204},
		{Target: model.Target{Word: "teh"}, Kind: model.OutcomeUnknown, Word: "teh", StatusCode: 404},
		{Target: model.Target{Word: "boom"}, Kind: model.OutcomeFailed, StatusCode: 500, Reason: errors.New("unexpected spell-check status: 500")},
		{Target: model.Target{Word: "xyzzy"}, Kind: model.OutcomeUnknown, Word: "xyzzy", StatusCode: 404},
	}
	run.Misspelled = []string{"teh", "xyzzy"}
	run.HashAlgorithm = "md5"
	run.Digest = "875390a36b0e83e508ee19a5c4747aa9"
	run.Answer = "875390a36b0e83e508ee19a5c4747aa9@outsideinc.com"
	return run
}

func createTestRecords() []database.RunRecord {
	run := createTestRun()
	return []database.RunRecord{
		{ID: 2, SavedAt: run.FinishedAt, Summary: model.NewSummary(run)},
		{ID: 1, SavedAt: run.StartedAt, Summary: model.NewSummary(run)},
	}
}

// TestTextWriter tests plain-text output.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("Write prints only the answer line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewTextWriter(&buf).Write(createTestRun())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "875390a36b0e83e508ee19a5c4747aa9@outsideinc.com\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
		if n != len(want) {
			t.Errorf("expected %d bytes, got %d", len(want), n)
		}
	})

	t.Run("WriteSummary includes counts and reasons", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).WriteSummary(model.NewSummary(createTestRun())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"SPELLDIGEST RUN",
			"Known:      1",
			"Unknown:    2",
			"Failed:     1",
			"unexpected spell-check status: 500",
			"Misspelled (completion order):",
			"  - teh",
			"Complete with failures",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("WriteHistory lists runs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).WriteHistory(createTestRecords()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[0], "ID") {
			t.Errorf("unexpected header %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "2 ") {
			t.Errorf("expected newest run first, got %q", lines[1])
		}
	})

	t.Run("WriteHistory handles empty history", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).WriteHistory(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "No runs recorded.\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

// TestJSONWriter tests JSON output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("Write wraps run and summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint(), WithVersion("v1.2.3"))
		if _, err := w.Write(createTestRun()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got struct {
			Version string `json:"version"`
			Run     struct {
				Answer     string   `json:"answer"`
				Misspelled []string `json:"misspelled"`
				Outcomes   []struct {
					Kind string `json:"kind"`
				} `json:"outcomes"`
			} `json:"run"`
			Summary model.Summary `json:"summary"`
		}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Version != "v1.2.3" {
			t.Errorf("expected version v1.2.3, got %q", got.Version)
		}
		if got.Run.Answer != "875390a36b0e83e508ee19a5c4747aa9@outsideinc.com" {
			t.Errorf("unexpected answer %q", got.Run.Answer)
		}
		if len(got.Run.Outcomes) != 4 || got.Run.Outcomes[2].Kind != "failed" {
			t.Errorf("unexpected outcomes %+v", got.Run.Outcomes)
		}
		if got.Summary.FailedCount != 1 {
			t.Errorf("expected 1 failure in summary, got %d", got.Summary.FailedCount)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("compact by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteSummary(model.NewSummary(createTestRun())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected a single line, got %q", buf.String())
		}
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteHistory(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "[]\n" {
			t.Errorf("expected [], got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests Markdown output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("Write includes chart and failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestRun()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"# Spelldigest Report",
			"## Outcomes",
			"```mermaid",
			"Outcome Distribution",
			"## Misspelled Words",
			"- teh",
			"## Failed Probes",
			"boom",
			"[!WARNING]",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("clean run gets a tip", func(t *testing.T) {
		t.Parallel()

		run := createTestRun()
		run.Outcomes = run.Outcomes[:2]

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "[!TIP]") {
			t.Error("expected tip alert")
		}
		if strings.Contains(out, "## Failed Probes") {
			t.Error("did not expect failed probes section")
		}
	})

	t.Run("WriteHistory renders a table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteHistory(createTestRecords()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "# Spelldigest Run History") {
			t.Error("expected history heading")
		}
		if strings.Count(out, "outsideinc.com") != 2 {
			t.Errorf("expected 2 answers in table, got %d", strings.Count(out, "outsideinc.com"))
		}
	})
}

// TestMultiWriter tests writing to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	mw := NewMultiWriter(NewTextWriter(&text), NewJSONWriter(&js))

	n, err := mw.Write(createTestRun())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != text.Len()+js.Len() {
		t.Errorf("expected %d bytes, got %d", text.Len()+js.Len(), n)
	}
	if text.Len() == 0 || js.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}

// TestTruncateString tests string truncation.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
