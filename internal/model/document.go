package model

import "time"

// Document is the text retrieved from the document source.
// It is created once per run and never modified afterwards.
type Document struct {
	// URL is the address the document was fetched from.
	URL string `json:"url"`

	// Body is the document text decoded to UTF-8.
	Body string `json:"-"`

	// ContentType is the Content-Type header returned by the source.
	ContentType string `json:"content_type,omitempty"`

	// Size is the number of bytes of the decoded body.
	Size int `json:"size"`

	// FetchedAt is when the document was retrieved.
	FetchedAt time.Time `json:"fetched_at"`
}
