package command

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance still offered as a hint.
const maxSuggestDistance = 2

// Suggest returns the keyword closest to the first word of line, or "" when
// nothing is within maxSuggestDistance edits.
func Suggest(line string) string {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ""
	}
	word := fields[0]

	best, bestDist := "", maxSuggestDistance+1
	for _, kw := range table {
		d := levenshtein.ComputeDistance(word, strings.ToLower(kw.words[0]))
		if d < bestDist {
			best, bestDist = kw.kind.String(), d
		}
	}
	return best
}
