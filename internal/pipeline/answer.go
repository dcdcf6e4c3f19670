package pipeline

// DefaultSuffix is appended to the digest to form the answer.
const DefaultSuffix = "@outsideinc.com"

// FormatAnswer appends suffix to digest.
func FormatAnswer(digest, suffix string) string {
	return digest + suffix
}
