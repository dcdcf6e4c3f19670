package digest

import (
	"errors"
	"slices"
	"testing"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	t.Run("empty list is the digest of the empty string", func(t *testing.T) {
		t.Parallel()

		got, err := Reduce(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != EmptyMD5 {
			t.Errorf("Reduce(nil) = %q, want %q", got, EmptyMD5)
		}

		got, err = Reduce([]string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != EmptyMD5 {
			t.Errorf("Reduce([]) = %q, want %q", got, EmptyMD5)
		}
	})

	t.Run("words are joined without separator", func(t *testing.T) {
		t.Parallel()

		joined, err := Reduce([]string{"helloworld"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		split, err := Reduce([]string{"hello", "world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if joined != split {
			t.Errorf("expected %q, got %q", joined, split)
		}
		// md5("helloworld")
		if joined != "fc5e038d38a57032085441e7fe7010b0" {
			t.Errorf("unexpected digest %q", joined)
		}
	})

	t.Run("digest is deterministic for a fixed order", func(t *testing.T) {
		t.Parallel()

		words := []string{"xyzzy", "teh", "recieve"}
		first, _ := Reduce(words)
		second, _ := Reduce(words)
		if first != second {
			t.Errorf("expected identical digests, got %q and %q", first, second)
		}
		if len(first) != 32 {
			t.Errorf("expected 32 hex characters, got %d", len(first))
		}
	})

	t.Run("order changes the digest", func(t *testing.T) {
		t.Parallel()

		a, _ := Reduce([]string{"abc", "xyz"})
		b, _ := Reduce([]string{"xyz", "abc"})
		if a == b {
			t.Error("expected different digests for different orders")
		}
	})

	t.Run("sorted option removes order dependence", func(t *testing.T) {
		t.Parallel()

		words := []string{"xyz", "abc"}
		a, _ := Reduce(words, WithSorted())
		b, _ := Reduce([]string{"abc", "xyz"}, WithSorted())
		if a != b {
			t.Errorf("expected equal digests, got %q and %q", a, b)
		}
		if !slices.Equal(words, []string{"xyz", "abc"}) {
			t.Errorf("input slice was modified: %q", words)
		}
	})

	t.Run("blake2b produces a 128-bit digest", func(t *testing.T) {
		t.Parallel()

		got, err := Reduce([]string{"xyzzy"}, WithAlgorithm(BLAKE2b128))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 32 {
			t.Errorf("expected 32 hex characters, got %d (%q)", len(got), got)
		}
		md5Digest, _ := Reduce([]string{"xyzzy"})
		if got == md5Digest {
			t.Error("expected blake2b digest to differ from md5")
		}
	})

	t.Run("unknown algorithm returns ErrUnknownAlgorithm", func(t *testing.T) {
		t.Parallel()

		_, err := Reduce(nil, WithAlgorithm("crc32"))
		if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
		}
	})
}
