package dom

import "strings"

// Stop words ignored by the words filter
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation, and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// containsAllWords reports whether every significant word of phrase appears
// in text. A phrase made only of stop words matches nothing.
func containsAllWords(text, phrase string) bool {
	wanted := tokenizeAndFilter(phrase)
	if len(wanted) == 0 {
		return false
	}

	present := make(map[string]bool)
	for _, word := range tokenizeAndFilter(text) {
		present[word] = true
	}

	for _, word := range wanted {
		if !present[word] {
			return false
		}
	}

	return true
}

func equalText(text, value string, caseSensitive bool) bool {
	text, value = normalizeSpace(text), normalizeSpace(value)
	if caseSensitive {
		return text == value
	}
	return strings.EqualFold(text, value)
}

func containsText(text, value string) bool {
	return strings.Contains(strings.ToLower(normalizeSpace(text)), strings.ToLower(normalizeSpace(value)))
}
