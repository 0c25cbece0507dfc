package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// OpenCorpora part-of-speech grammemes for auxiliary words.
const (
	TagPronoun      = "NPRO"
	TagPreposition  = "PREP"
	TagConjunction  = "CONJ"
	TagParticle     = "PRCL"
	TagInterjection = "INTJ"
	TagUnknown      = "UNKN"
)

// ErrNoParses is returned when an analyzer yields no candidate parse.
var ErrNoParses = errors.New("analyzer returned no parses")

// GrammemeSet is a set of grammatical labels.
type GrammemeSet map[string]struct{}

// NewGrammemeSet builds a set from the given grammemes.
func NewGrammemeSet(grammemes ...string) GrammemeSet {
	s := make(GrammemeSet, len(grammemes))
	for _, g := range grammemes {
		s[g] = struct{}{}
	}
	return s
}

// ParseTag reads a pymorphy-style tag string such as
// "NOUN,inan,masc sing,nomn".
func ParseTag(tag string) GrammemeSet {
	return NewGrammemeSet(strings.FieldsFunc(tag, func(r rune) bool {
		return r == ',' || r == ' '
	})...)
}

func (s GrammemeSet) Has(grammeme string) bool {
	_, ok := s[grammeme]
	return ok
}

// HasAny reports whether s and other share at least one grammeme.
func (s GrammemeSet) HasAny(other GrammemeSet) bool {
	for g := range other {
		if s.Has(g) {
			return true
		}
	}
	return false
}

// String returns the grammemes sorted and comma separated.
func (s GrammemeSet) String() string {
	out := make([]string, 0, len(s))
	for g := range s {
		out = append(out, g)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

// Parse is one candidate analysis of a word.
type Parse struct {
	Word       string
	NormalForm string
	Tag        GrammemeSet
}

// MorphAnalyzer returns candidate parses for a word, best first.
type MorphAnalyzer interface {
	Parse(word string) ([]Parse, error)
}

// AuxiliaryPOS returns the parts of speech removed by the normalizer:
// pronouns, prepositions, conjunctions, particles and interjections.
func AuxiliaryPOS() GrammemeSet {
	return NewGrammemeSet(TagPronoun, TagPreposition, TagConjunction, TagParticle, TagInterjection)
}

// Normalizer lemmatizes tokens and drops auxiliary parts of speech using
// the first parse the analyzer returns.
type Normalizer struct {
	analyzer MorphAnalyzer
	auxTags  GrammemeSet
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithAuxiliaryTags replaces the set of grammemes treated as auxiliary.
func WithAuxiliaryTags(tags GrammemeSet) NormalizerOption {
	return func(n *Normalizer) {
		n.auxTags = NewGrammemeSet()
		for g := range tags {
			n.auxTags[g] = struct{}{}
		}
	}
}

func NewNormalizer(analyzer MorphAnalyzer, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		analyzer: analyzer,
		auxTags:  AuxiliaryPOS(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) firstParse(token string) (Parse, error) {
	parses, err := n.analyzer.Parse(token)
	if err != nil {
		return Parse{}, fmt.Errorf("parse %q: %w", token, err)
	}
	if len(parses) == 0 {
		return Parse{}, fmt.Errorf("parse %q: %w", token, ErrNoParses)
	}
	return parses[0], nil
}

func (n *Normalizer) isAuxiliary(token string) (bool, error) {
	p, err := n.firstParse(token)
	if err != nil {
		return false, err
	}
	return p.Tag.HasAny(n.auxTags), nil
}

// RStripAuxiliaryPOS removes the trailing run of auxiliary tokens, stopping
// at the last token that is not auxiliary. An empty list is returned
// without consulting the analyzer.
func (n *Normalizer) RStripAuxiliaryPOS(tokens []string) ([]string, error) {
	for len(tokens) > 0 {
		aux, err := n.isAuxiliary(tokens[len(tokens)-1])
		if err != nil {
			return nil, err
		}
		if !aux {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return tokens, nil
}

// StripAuxiliaryPOSLegacy reproduces the historical whole-list filter: every
// iteration inspects the last token rather than the current one, so the
// result is either the input unchanged or empty. Kept for callers that
// depend on that output; new code should use StripAuxiliaryPOS.
func (n *Normalizer) StripAuxiliaryPOSLegacy(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}

	drop := make(map[string]struct{})
	for _, token := range tokens {
		aux, err := n.isAuxiliary(tokens[len(tokens)-1])
		if err != nil {
			return nil, err
		}
		if aux {
			drop[token] = struct{}{}
		}
	}
	return dropValues(tokens, drop), nil
}

// StripAuxiliaryPOS removes every auxiliary token from the list. Removal is
// by value: once a token is auxiliary all of its occurrences go.
func (n *Normalizer) StripAuxiliaryPOS(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}

	drop := make(map[string]struct{})
	for _, token := range tokens {
		aux, err := n.isAuxiliary(token)
		if err != nil {
			return nil, err
		}
		if aux {
			drop[token] = struct{}{}
		}
	}
	return dropValues(tokens, drop), nil
}

func dropValues(tokens []string, drop map[string]struct{}) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := drop[token]; !ok {
			out = append(out, token)
		}
	}
	return out
}

// Lemmatize maps every token to the normal form of its first parse.
func (n *Normalizer) Lemmatize(tokens []string) ([]string, error) {
	lemmas := make([]string, len(tokens))
	for i, token := range tokens {
		p, err := n.firstParse(token)
		if err != nil {
			return nil, err
		}
		lemmas[i] = p.NormalForm
	}
	return lemmas, nil
}

// NormalizeText lemmatizes the whitespace-separated tokens of text and
// strips the trailing run of auxiliary lemmas. Auxiliary words in the
// middle of the text are kept.
func (n *Normalizer) NormalizeText(text string) (string, error) {
	lemmas, err := n.Lemmatize(tokenize(text))
	if err != nil {
		return "", err
	}
	lemmas, err = n.RStripAuxiliaryPOS(lemmas)
	if err != nil {
		return "", err
	}
	return strings.Join(lemmas, " "), nil
}
