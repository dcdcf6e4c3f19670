package document

import "errors"

var (
	// ErrFetch is returned when the request could not be completed.
	ErrFetch = errors.New("failed to fetch document")

	// ErrStatus is returned when the source answers with a non-2xx status.
	ErrStatus = errors.New("unexpected document status")

	// ErrDecode is returned when the body cannot be decoded to UTF-8.
	ErrDecode = errors.New("failed to decode document")
)
