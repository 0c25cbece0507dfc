package utils

import (
	"errors"
	"testing"

	"github.com/kljensen/snowball"
)

func TestSnowballAnalyzer_ClosedClass(t *testing.T) {
	a := NewSnowballAnalyzer()

	tests := []struct {
		word  string
		lemma string
		pos   string
	}{
		{"на", "на", TagPreposition},
		{"Него", "он", TagPronoun},
		{"её", "она", TagPronoun},
		{"и", "и", TagConjunction},
		{"Же", "же", TagParticle},
		{"ой", "ой", TagInterjection},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			parses, err := a.Parse(tt.word)
			if err != nil {
				t.Fatal(err)
			}
			if len(parses) != 1 {
				t.Fatalf("got %d parses, want 1", len(parses))
			}
			p := parses[0]
			if p.NormalForm != tt.lemma {
				t.Errorf("NormalForm = %q, want %q", p.NormalForm, tt.lemma)
			}
			if !p.Tag.Has(tt.pos) {
				t.Errorf("Tag = %s, want %s", p.Tag, tt.pos)
			}
			if p.Word != tt.word {
				t.Errorf("Word = %q, want %q", p.Word, tt.word)
			}
		})
	}
}

func TestSnowballAnalyzer_Stems(t *testing.T) {
	a := NewSnowballAnalyzer()

	for _, word := range []string{"кошки", "Ёлки", "сидели", "программирование"} {
		t.Run(word, func(t *testing.T) {
			parses, err := a.Parse(word)
			if err != nil {
				t.Fatal(err)
			}
			want, _ := snowball.Stem(a.fold(word), "russian", false)
			if parses[0].NormalForm != want {
				t.Errorf("NormalForm = %q, want %q", parses[0].NormalForm, want)
			}
			if !parses[0].Tag.Has(TagUnknown) || parses[0].Tag.HasAny(AuxiliaryPOS()) {
				t.Errorf("Tag = %s, want UNKN", parses[0].Tag)
			}
		})
	}
}

func TestSnowballAnalyzer_Fold(t *testing.T) {
	a := NewSnowballAnalyzer()
	tests := []struct {
		input string
		want  string
	}{
		{"Ёлка", "елка"},
		{"до\u0301ма", "дома"},
		{"чай", "чай"},
		{"ЙОД", "йод"},
	}
	for _, tt := range tests {
		if got := a.fold(tt.input); got != tt.want {
			t.Errorf("fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSnowballAnalyzer_Empty(t *testing.T) {
	if _, err := NewSnowballAnalyzer().Parse(""); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Parse(\"\") error = %v, want %v", err, ErrEmptyWord)
	}
}

func TestSnowballAnalyzer_Normalizer(t *testing.T) {
	a := NewSnowballAnalyzer()
	n := NewNormalizer(a)

	got, err := n.NormalizeText("кошка и собака сидят на")
	if err != nil {
		t.Fatal(err)
	}

	var want string
	for i, w := range []string{"кошка", "и", "собака", "сидят"} {
		p, _ := a.Parse(w)
		if i > 0 {
			want += " "
		}
		want += p[0].NormalForm
	}
	if got != want {
		t.Errorf("NormalizeText = %q, want %q", got, want)
	}
}
