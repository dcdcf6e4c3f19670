package spellcheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/spelldigest/internal/model"
)

// TestHTTPProber tests probing against a local server.
func TestHTTPProber(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimPrefix(r.URL.Path, "/spelling/") {
		case "cat":
			w.WriteHeader(http.StatusNoContent)
		case "slow":
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	base := server.URL + "/spelling/"

	t.Run("returns 204 for a known word", func(t *testing.T) {
		t.Parallel()

		prober := NewHTTPProber(server.Client(), time.Second)
		status, err := prober.Probe(context.Background(), model.Target{Word: "cat", URL: base + "cat"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusNoContent {
			t.Errorf("expected 204, got %d", status)
		}
	})

	t.Run("returns 404 for an unknown word", func(t *testing.T) {
		t.Parallel()

		prober := NewHTTPProber(server.Client(), time.Second)
		status, err := prober.Probe(context.Background(), model.Target{Word: "xyzzy", URL: base + "xyzzy"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("expected 404, got %d", status)
		}
	})

	t.Run("times out slow responses", func(t *testing.T) {
		t.Parallel()

		prober := NewHTTPProber(server.Client(), 50*time.Millisecond)
		_, err := prober.Probe(context.Background(), model.Target{Word: "slow", URL: base + "slow"})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		prober := NewHTTPProber(server.Client(), time.Second)
		_, err := prober.Probe(context.Background(), model.Target{Word: "bad", URL: "http://[::1"})
		if err == nil {
			t.Error("expected error for malformed URL")
		}
	})
}

// TestProberFunc tests the function adapter.
func TestProberFunc(t *testing.T) {
	t.Parallel()

	var p Prober = ProberFunc(func(_ context.Context, target model.Target) (int, error) {
		if target.Word == "cat" {
			return http.StatusNoContent, nil
		}
		return http.StatusNotFound, nil
	})

	status, err := p.Probe(context.Background(), model.Target{Word: "cat"})
	if err != nil || status != http.StatusNoContent {
		t.Errorf("expected 204 and nil, got %d and %v", status, err)
	}
}
