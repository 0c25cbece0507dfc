package utils

import (
	"strings"
)

// RemoveStopwords drops every whitespace-separated token that contains any
// of stopwords as a substring, so "по" also removes "попытка".
// Survivors are joined with single spaces.
func RemoveStopwords(text string, stopwords []string) string {
	return strings.Join(stopwordFilter(tokenize(text), stopwords), " ")
}

// In-place stopword filter
func stopwordFilter(tokens []string, stopwords []string) []string {
	n := 0
	for _, token := range tokens {
		if !containsAny(token, stopwords) {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}

func containsAny(token string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(token, s) {
			return true
		}
	}
	return false
}
