package model

import "time"

// Run holds everything produced by one pipeline run.
// Pipeline steps receive the same *Run and fill in their part of it.
type Run struct {
	// DocumentURL is where the document is fetched from.
	DocumentURL string `json:"document_url"`

	// SpellCheckBaseURL is the prefix every candidate word is appended to.
	SpellCheckBaseURL string `json:"spell_check_base_url"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the last step completed.
	FinishedAt time.Time `json:"finished_at"`

	// Document is the retrieved document. Nil until the fetch step succeeds.
	Document *Document `json:"document,omitempty"`

	// Words are the candidate words in document order.
	Words []string `json:"-"`

	// Targets are the lookup targets, same length and order as Words.
	Targets []Target `json:"-"`

	// Outcomes are the probe outcomes in completion order.
	Outcomes []Outcome `json:"outcomes,omitempty"`

	// Misspelled are the words classified Unknown in the order that was
	// digested: completion order, or sorted when sorting is enabled.
	Misspelled []string `json:"misspelled"`

	// Sorted is true when Misspelled was sorted before digesting.
	Sorted bool `json:"sorted"`

	// HashAlgorithm names the digest algorithm used.
	HashAlgorithm string `json:"hash_algorithm"`

	// Digest is the hex digest of the concatenated misspelled words.
	Digest string `json:"digest"`

	// Answer is the digest with the output suffix appended.
	Answer string `json:"answer"`

	// PerformedSteps lists the pipeline steps that completed.
	PerformedSteps []string `json:"performed_steps"`

	// Error holds the error that stopped the pipeline, if any.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewRun creates a Run for the given document and spell-check URLs.
func NewRun(documentURL, spellCheckBaseURL string) *Run {
	return &Run{
		DocumentURL:       documentURL,
		SpellCheckBaseURL: spellCheckBaseURL,
		StartedAt:         time.Now(),
		Misspelled:        make([]string, 0),
		PerformedSteps:    make([]string, 0),
	}
}

// Duration returns how long the run took. Zero if it has not finished.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Failures returns the outcomes that were absorbed as failures.
func (r *Run) Failures() []Outcome {
	failed := make([]Outcome, 0)
	for _, o := range r.Outcomes {
		if o.IsFailed() {
			failed = append(failed, o)
		}
	}
	return failed
}
