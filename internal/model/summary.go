package model

import (
	"slices"
	"time"
)

// Summary is a condensed view of a Run for reports and the run history.
type Summary struct {
	// DocumentURL is where the document was fetched from.
	DocumentURL string `json:"document_url"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration"`

	// WordCount is the number of candidate words.
	WordCount int `json:"word_count"`

	// KnownCount is the number of probes classified Known.
	KnownCount int `json:"known_count"`

	// UnknownCount is the number of probes classified Unknown.
	UnknownCount int `json:"unknown_count"`

	// FailedCount is the number of probes absorbed as failures.
	FailedCount int `json:"failed_count"`

	// FailureReasons maps each failure reason to how often it occurred.
	FailureReasons map[string]int `json:"failure_reasons,omitempty"`

	// Misspelled are the digested words, in digest order.
	Misspelled []string `json:"misspelled"`

	// Sorted is true when the words were sorted before digesting.
	Sorted bool `json:"sorted"`

	// HashAlgorithm names the digest algorithm.
	HashAlgorithm string `json:"hash_algorithm"`

	// Digest is the hex digest.
	Digest string `json:"digest"`

	// Answer is the final output line.
	Answer string `json:"answer"`

	// Error contains the error message if the run failed.
	Error string `json:"error,omitempty"`
}

// NewSummary builds a Summary from a Run.
func NewSummary(run *Run) *Summary {
	s := &Summary{
		DocumentURL:   run.DocumentURL,
		StartedAt:     run.StartedAt,
		Duration:      run.Duration(),
		WordCount:     len(run.Words),
		Misspelled:    slices.Clone(run.Misspelled),
		Sorted:        run.Sorted,
		HashAlgorithm: run.HashAlgorithm,
		Digest:        run.Digest,
		Answer:        run.Answer,
		Error:         run.ErrorMessage,
	}

	for _, o := range run.Outcomes {
		switch o.Kind {
		case OutcomeKnown:
			s.KnownCount++
		case OutcomeUnknown:
			s.UnknownCount++
		case OutcomeFailed:
			s.FailedCount++
			if s.FailureReasons == nil {
				s.FailureReasons = make(map[string]int)
			}
			s.FailureReasons[o.ReasonText()]++
		}
	}

	return s
}

// ProbeCount returns the total number of classified probes.
func (s *Summary) ProbeCount() int {
	return s.KnownCount + s.UnknownCount + s.FailedCount
}

// HasFailures reports whether any probe was absorbed as a failure.
func (s *Summary) HasFailures() bool {
	return s.FailedCount > 0
}
