package spellcheck

import "github.com/nao1215/spelldigest/internal/model"

// BuildTargets pairs every word with base+word. Words are neither escaped
// nor case-folded, and the result has the same length and order as words.
func BuildTargets(base string, words []string) []model.Target {
	targets := make([]model.Target, len(words))
	for i, word := range words {
		targets[i] = model.Target{
			Word: word,
			URL:  base + word,
		}
	}
	return targets
}
