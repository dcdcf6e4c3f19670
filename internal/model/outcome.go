package model

import (
	"encoding/json"
	"time"
)

// Target pairs a candidate word with the spell-check URL built from it.
// Targets are created by the URL builder and consumed exactly once by
// the probe executor.
type Target struct {
	// Word is the candidate word as produced by the tokenizer.
	Word string `json:"word"`

	// URL is the fully formed spell-check request address.
	URL string `json:"url"`
}

// OutcomeKind classifies the result of a single spell-check probe.
type OutcomeKind int

const (
	// OutcomeKnown means the service recognized the word (HTTP 204).
	OutcomeKnown OutcomeKind = iota

	// OutcomeUnknown means the service did not recognize the word (HTTP 404).
	// Only Unknown outcomes contribute to the digest.
	OutcomeUnknown

	// OutcomeFailed covers transport errors, timeouts and any status code
	// other than 204 or 404. The word is dropped from consideration.
	OutcomeFailed
)

// String returns a human-readable representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeKnown:
		return "known"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// MarshalJSON encodes the kind as its string form.
func (k OutcomeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Outcome is the classified result of probing one Target.
type Outcome struct {
	// Target is the probed target.
	Target Target `json:"target"`

	// Kind is the classification of the probe result.
	Kind OutcomeKind `json:"kind"`

	// Word is the misspelled word recovered from the target URL.
	// It is only set when Kind is OutcomeUnknown.
	Word string `json:"word,omitempty"`

	// StatusCode is the HTTP status returned by the service.
	// Zero when the request never produced a response.
	StatusCode int `json:"status_code,omitempty"`

	// Reason explains why a probe failed. Nil unless Kind is OutcomeFailed.
	Reason error `json:"-"`

	// Elapsed is how long the probe took.
	Elapsed time.Duration `json:"elapsed"`
}

// ReasonText returns the failure reason as a string, or "" if there is none.
func (o Outcome) ReasonText() string {
	if o.Reason == nil {
		return ""
	}
	return o.Reason.Error()
}

// IsFailed reports whether the probe was absorbed as a failure.
func (o Outcome) IsFailed() bool {
	return o.Kind == OutcomeFailed
}
