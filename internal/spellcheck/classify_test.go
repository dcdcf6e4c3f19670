package spellcheck

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/nao1215/spelldigest/internal/model"
)

// TestClassify tests status/error classification.
func TestClassify(t *testing.T) {
	t.Parallel()

	const base = "https://svc/spelling/"
	target := model.Target{Word: "xyzzy", URL: base + "xyzzy"}

	tests := []struct {
		name       string
		target     model.Target
		status     int
		err        error
		wantKind   model.OutcomeKind
		wantWord   string
		wantReason error
	}{
		{
			name:     "404 is unknown",
			target:   target,
			status:   http.StatusNotFound,
			wantKind: model.OutcomeUnknown,
			wantWord: "xyzzy",
		},
		{
			name:     "204 is known",
			target:   target,
			status:   http.StatusNoContent,
			wantKind: model.OutcomeKnown,
		},
		{
			name:       "200 is failed",
			target:     target,
			status:     http.StatusOK,
			wantKind:   model.OutcomeFailed,
			wantReason: ErrUnexpectedStatus,
		},
		{
			name:       "500 is failed",
			target:     target,
			status:     http.StatusInternalServerError,
			wantKind:   model.OutcomeFailed,
			wantReason: ErrUnexpectedStatus,
		},
		{
			name:       "transport error is failed",
			target:     target,
			err:        context.DeadlineExceeded,
			wantKind:   model.OutcomeFailed,
			wantReason: context.DeadlineExceeded,
		},
		{
			name:       "error wins over status",
			target:     target,
			status:     http.StatusNotFound,
			err:        context.Canceled,
			wantKind:   model.OutcomeFailed,
			wantReason: context.Canceled,
		},
		{
			name:       "404 outside base is failed",
			target:     model.Target{Word: "x", URL: "https://other/x"},
			status:     http.StatusNotFound,
			wantKind:   model.OutcomeFailed,
			wantReason: ErrPrefixMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.target, base, tt.status, tt.err)

			if got.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, got.Kind)
			}
			if got.Word != tt.wantWord {
				t.Errorf("expected word %q, got %q", tt.wantWord, got.Word)
			}
			if got.Target != tt.target {
				t.Errorf("expected target %+v, got %+v", tt.target, got.Target)
			}
			if tt.wantReason == nil && got.Reason != nil {
				t.Errorf("expected no reason, got %v", got.Reason)
			}
			if tt.wantReason != nil && !errors.Is(got.Reason, tt.wantReason) {
				t.Errorf("expected reason %v, got %v", tt.wantReason, got.Reason)
			}
		})
	}
}
