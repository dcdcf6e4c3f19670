// Package digest reduces the misspelled word list to a single hex digest.
package digest

import (
	"crypto/md5" //nolint:gosec // MD5 is the answer format, not a security control
	"encoding/hex"
	"errors"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Supported algorithm names.
const (
	// MD5 is the default algorithm.
	MD5 = "md5"

	// BLAKE2b128 is BLAKE2b truncated to 128 bits, so the digest keeps the
	// same 32-character length as MD5.
	BLAKE2b128 = "blake2b"
)

// EmptyMD5 is the MD5 digest of the empty string.
const EmptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

// ErrUnknownAlgorithm is returned for an unsupported algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

type options struct {
	algorithm string
	sorted    bool
}

// Option configures Reduce.
type Option func(*options)

// WithAlgorithm selects the hash algorithm. The default is MD5.
func WithAlgorithm(name string) Option {
	return func(o *options) {
		o.algorithm = name
	}
}

// WithSorted sorts a copy of the words before joining them, making the
// digest independent of probe completion order.
func WithSorted() Option {
	return func(o *options) {
		o.sorted = true
	}
}

// Reduce joins words with no separator and returns the lowercase hex digest
// of the UTF-8 bytes. The input slice is never modified.
func Reduce(words []string, opts ...Option) (string, error) {
	o := options{algorithm: MD5}
	for _, opt := range opts {
		opt(&o)
	}

	h, err := newHash(o.algorithm)
	if err != nil {
		return "", err
	}

	if o.sorted {
		words = slices.Clone(words)
		slices.Sort(words)
	}

	// hash.Hash.Write never returns an error.
	_, _ = h.Write([]byte(strings.Join(words, "")))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// newHash returns a fresh hash for the named algorithm.
func newHash(name string) (hash.Hash, error) {
	switch name {
	case MD5:
		return md5.New(), nil //nolint:gosec // see import
	case BLAKE2b128:
		return blake2b.New(16, nil)
	default:
		return nil, errors.Join(ErrUnknownAlgorithm, errors.New(name))
	}
}
