package utils

import (
	"strings"
	"unicode"
)

// asciiPunctuation is the set of printable ASCII punctuation characters.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// tokenize splits text on runs of Unicode white space.
func tokenize(text string) []string {
	return strings.Fields(text)
}

func isASCIIPunct(r rune) bool {
	return r < unicode.MaxASCII && strings.ContainsRune(asciiPunctuation, r)
}

// RemovePunctuation replaces every ASCII punctuation character with a
// single space. The result has the same number of runes as text.
func RemovePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if isASCIIPunct(r) {
			return ' '
		}
		return r
	}, text)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// StripSpecialCharacters trims leading and trailing runs of characters
// that are not letters, digits or underscore.
func StripSpecialCharacters(text string) string {
	return strings.TrimFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}
