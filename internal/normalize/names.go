package normalize

import "strings"

// dateHints are the substrings that mark a column as date-like.
var dateHints = []string{"data", "date"}

// FoldColumn lowercases and trims a column name for comparison.
func FoldColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LooksLikeDateColumn reports whether a column name contains "data" or "date",
// ignoring case.
func LooksLikeDateColumn(name string) bool {
	folded := FoldColumn(name)
	for _, hint := range dateHints {
		if strings.Contains(folded, hint) {
			return true
		}
	}
	return false
}
