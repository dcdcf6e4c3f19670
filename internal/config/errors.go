package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoDocumentURL is returned when the document URL is empty.
	ErrNoDocumentURL = errors.New("no document URL specified")

	// ErrInvalidDocumentURL is returned when the document URL is not http(s).
	ErrInvalidDocumentURL = errors.New("invalid document URL: must be an absolute http or https URL")

	// ErrNoSpellCheckURL is returned when the spell-check base URL is empty.
	ErrNoSpellCheckURL = errors.New("no spell-check URL specified")

	// ErrInvalidSpellCheckURL is returned when the spell-check base URL is not http(s).
	ErrInvalidSpellCheckURL = errors.New("invalid spell-check URL: must be an absolute http or https URL")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid worker count: must be positive")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrUnsupportedHash is returned for an unknown digest algorithm.
	ErrUnsupportedHash = errors.New("unsupported hash algorithm: use md5 or blake2b")

	// ErrNoDBDir is returned when saving is requested without a directory.
	ErrNoDBDir = errors.New("no database directory specified")
)
