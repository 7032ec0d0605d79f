// City name extraction for weather questions.
package intent

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CityExtractorFunc pulls a city name out of a weather question.
// ExtractCity is the default.
type CityExtractorFunc func(question string) (string, bool)

// cityTriggers are tried in this order, not in sentence order. The
// first trigger followed by at least one word captures everything
// after its first occurrence.
var cityTriggers = []string{"in", "for", "at"}

// ExtractCity guesses the city a weather question refers to: the words
// after the first matching trigger, title-cased, or else the first
// capitalized word longer than two runes, as written. The guess is
// textual only. Trailing words ride along ("weather in paris today"
// yields "Paris Today") and the weather API settles whether the guess
// exists.
func ExtractCity(question string) (string, bool) {
	words := strings.Fields(stripPunctuation(strings.ToLower(question)))

	for _, trigger := range cityTriggers {
		idx := indexOf(words, trigger)
		if idx < 0 || idx+1 >= len(words) {
			// A trigger with nothing after it does not capture.
			continue
		}
		joined := strings.Join(words[idx+1:], " ")
		return cases.Title(language.English).String(joined), true
	}

	for _, word := range strings.Fields(question) {
		clean := stripNonWord(word)
		runes := []rune(clean)
		if len(runes) > 2 && unicode.IsUpper(runes[0]) {
			return clean, true
		}
	}
	return "", false
}

// stripPunctuation deletes every rune that is neither a word character
// nor whitespace. Deleted, not blanked: "london,uk" becomes "londonuk".
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// stripNonWord deletes every rune that is not a word character.
func stripNonWord(s string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return -1
	}, s)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func indexOf(words []string, target string) int {
	for i, w := range words {
		if w == target {
			return i
		}
	}
	return -1
}
