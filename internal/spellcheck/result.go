package spellcheck

import (
	"time"

	"github.com/nao1215/spelldigest/internal/model"
)

// Result holds the outcomes of one Executor.Run.
type Result struct {
	// Outcomes are in completion order; there is exactly one per target.
	Outcomes []model.Outcome

	// Elapsed is the wall-clock time of the run.
	Elapsed time.Duration
}

// Misspelled returns the words classified Unknown, in completion order.
func (r *Result) Misspelled() []string {
	words := make([]string, 0)
	for _, o := range r.Outcomes {
		if o.Kind == model.OutcomeUnknown {
			words = append(words, o.Word)
		}
	}
	return words
}

// Failures returns the outcomes classified Failed.
func (r *Result) Failures() []model.Outcome {
	failed := make([]model.Outcome, 0)
	for _, o := range r.Outcomes {
		if o.IsFailed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Counts returns the number of Known, Unknown and Failed outcomes.
func (r *Result) Counts() (known, unknown, failed int) {
	for _, o := range r.Outcomes {
		switch o.Kind {
		case model.OutcomeKnown:
			known++
		case model.OutcomeUnknown:
			unknown++
		case model.OutcomeFailed:
			failed++
		}
	}
	return known, unknown, failed
}
