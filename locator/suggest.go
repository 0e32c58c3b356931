package locator

import (
	"github.com/agnivade/levenshtein"
	"github.com/poiesic/locate/core"
)

// maxSuggestionDistance bounds how different a suggestion may be from the
// written name.
const maxSuggestionDistance = 3

// suggest returns the normalized key of the type closest to name, or "" when
// nothing is close enough.
func suggest(types []*core.ActionType, name string) string {
	normalized := core.NormalizeKey(name)
	best, bestDistance := "", maxSuggestionDistance+1
	for _, t := range types {
		d := levenshtein.ComputeDistance(normalized, t.NormalizedKey())
		if d < bestDistance {
			best, bestDistance = t.NormalizedKey(), d
		}
	}
	return best
}
