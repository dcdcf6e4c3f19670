package spellcheck

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nao1215/spelldigest/internal/model"
)

var (
	// ErrUnexpectedStatus marks a response that was neither 204 nor 404.
	ErrUnexpectedStatus = errors.New("unexpected spell-check status")

	// ErrPrefixMismatch marks a 404 for a URL that does not start with the
	// spell-check base URL, so no word can be recovered from it.
	ErrPrefixMismatch = errors.New("target URL does not start with the spell-check base URL")
)

// Classify turns the result of one probe into an Outcome.
//
// A non-nil err always yields Failed. Otherwise 404 yields Unknown, with the
// word recovered by stripping base from the target URL, 204 yields Known, and
// any other status yields Failed wrapping ErrUnexpectedStatus.
func Classify(target model.Target, base string, status int, err error) model.Outcome {
	outcome := model.Outcome{
		Target:     target,
		StatusCode: status,
	}

	if err != nil {
		outcome.Kind = model.OutcomeFailed
		outcome.Reason = err
		return outcome
	}

	switch status {
	case http.StatusNotFound:
		word, ok := strings.CutPrefix(target.URL, base)
		if !ok {
			outcome.Kind = model.OutcomeFailed
			outcome.Reason = ErrPrefixMismatch
			return outcome
		}
		outcome.Kind = model.OutcomeUnknown
		outcome.Word = word
	case http.StatusNoContent:
		outcome.Kind = model.OutcomeKnown
	default:
		outcome.Kind = model.OutcomeFailed
		outcome.Reason = fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	return outcome
}
