// Package tokenizer turns document text into candidate words.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
)

// specialChars matches the characters that are replaced by a space before
// splitting. Apostrophes are not included so contractions survive intact.
var specialChars = regexp.MustCompile(`[!,*)@#%(&$_?.^"]`)

// Tokenize returns the candidate words of text in document order.
//
// Special characters are replaced with a space, then the text is split on
// semicolons, comma-plus-whitespace, whitespace and hyphens. Empty tokens
// are dropped. An empty input yields an empty, non-nil slice.
func Tokenize(text string) []string {
	cleaned := specialChars.ReplaceAllString(text, " ")

	// Commas were replaced above, so comma-plus-whitespace is already
	// covered by the whitespace delimiter.
	words := strings.FieldsFunc(cleaned, isDelimiter)
	if words == nil {
		return []string{}
	}
	return words
}

// isDelimiter reports whether r separates two words.
func isDelimiter(r rune) bool {
	return r == ';' || r == '-' || unicode.IsSpace(r)
}
