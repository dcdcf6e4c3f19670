// Package document retrieves the text document that is spell-checked.
//
// Any failure here is fatal to a run: transport errors, non-2xx responses
// and bodies that cannot be decoded all surface as errors wrapping ErrFetch,
// ErrStatus or ErrDecode.
package document
