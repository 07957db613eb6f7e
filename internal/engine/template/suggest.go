package template

import "github.com/agext/levenshtein"

// Suggest returns the option closest to text by edit distance, or "" when
// nothing is close enough to plausibly be a typo.
func Suggest(text string, options []string) string {
	suggestion := ""
	bestDistance := len(text)

	for _, option := range options {
		dist := levenshtein.Distance(text, option, nil)
		if dist < bestDistance {
			suggestion = option
			bestDistance = dist
		}
	}

	return suggestion
}
