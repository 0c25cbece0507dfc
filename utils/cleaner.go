package utils

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
)

// Rule is a single substitution of the cleaning pass.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultRules returns the substitution table used by CleanText.
// Order matters: separator and terminator runs are collapsed only after
// the punctuation that produces them has been rewritten.
func DefaultRules() []Rule {
	return []Rule{
		// mentions and hashtags
		{regexp.MustCompile(`(@|#)[A-Za-z0-9А-Яа-яЁё_]+`), " "},
		// vk-style [id12345|Name] references
		{regexp.MustCompile(`\[(id|club)\p{Nd}{5,20}\|[A-Za-z0-9А-Яа-яЁё_/ ]*\]`), " "},
		{regexp.MustCompile(`https://[A-Za-z0-9.]*/[A-Za-z0-9.\-_/?+]*`), " "},
		{regexp.MustCompile(`&quot;`), " "},
		{regexp.MustCompile(`₽`), "руб "},
		{regexp.MustCompile(`&quot`), " "},
		{regexp.MustCompile(`(<br>|;|&|:)`), ". "},
		{regexp.MustCompile(`[^A-Za-z0-9А-Яа-яЁё_\-+*.,_×/%?!;()«»']+`), " "},
		{regexp.MustCompile(`(__|; ;|~~|~ ~|;;)+`), " "},
		{regexp.MustCompile(`(\. \.|\.\.| \.)+`), ". "},
		{regexp.MustCompile(`^\.`), " "},
	}
}

// Cleaner applies a fixed rule table to raw text.
type Cleaner struct {
	rules []Rule
}

// NewCleaner copies rules so later changes to the slice do not leak in.
func NewCleaner(rules []Rule) *Cleaner {
	r := make([]Rule, len(rules))
	copy(r, rules)
	return &Cleaner{rules: r}
}

var defaultCleaner = sync.OnceValue(func() *Cleaner {
	return NewCleaner(DefaultRules())
})

// CleanText lower-cases v and runs it through the default rule table.
// A non-nil *string is dereferenced and named string types are accepted;
// any other value yields "".
func CleanText(v any) string {
	switch s := v.(type) {
	case string:
		return defaultCleaner().Clean(s)
	case *string:
		if s == nil {
			return ""
		}
		return defaultCleaner().Clean(*s)
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return defaultCleaner().Clean(rv.String())
	}
	return ""
}

// Clean lower-cases text, applies every rule in order and finally turns
// ASCII punctuation inside the surviving tokens into spaces.
func (c *Cleaner) Clean(text string) string {
	text = strings.ToLower(text)

	for _, r := range c.rules {
		text = collapseSpaces(r.Pattern.ReplaceAllLiteralString(text, r.Replacement))
	}

	tokens := strings.Split(text, " ")
	out := tokens[:0]
	for _, token := range tokens {
		if token == "" {
			continue
		}
		out = append(out, RemovePunctuation(token))
	}

	return collapseSpaces(strings.Join(out, " "))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
