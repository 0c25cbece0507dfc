package utils

import (
	"errors"
	"strings"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyWord is returned by SnowballAnalyzer for an empty word.
var ErrEmptyWord = errors.New("empty word")

type lexeme struct {
	lemma string
	pos   string
}

// closedClass lists Russian auxiliary words, keyed by form with ё folded to е.
var closedClass = buildClosedClass(map[string][]string{
	TagPronoun: {
		"я", "меня", "мне", "мной", "мною",
		"ты", "тебя", "тебе", "тобой", "тобою",
		"он", "его", "него", "ему", "нему", "им", "ним", "нем",
		"она", "ее", "нее", "ей", "ней", "ею", "нею",
		"оно",
		"мы", "нас", "нам", "нами",
		"вы", "вас", "вам", "вами",
		"они", "их", "них", "ими", "ними",
		"себя", "себе", "собой", "собою",
		"кто", "кого", "кому", "кем", "ком",
		"что", "чего", "чему", "чем",
		"никто", "никого", "никому", "ничто", "ничего", "ничему",
		"некто", "нечто", "кто-то", "что-то", "кто-нибудь", "что-нибудь",
	},
	TagPreposition: {
		"в", "во", "на", "с", "со", "к", "ко", "по", "о", "об", "обо",
		"от", "ото", "до", "из", "изо", "у", "за", "над", "надо", "под", "подо",
		"перед", "передо", "при", "про", "для", "без", "безо", "через", "сквозь",
		"между", "среди", "около", "вокруг", "после", "кроме", "вместо", "ради",
		"из-за", "из-под", "вдоль", "возле", "мимо", "против", "согласно",
	},
	TagConjunction: {
		"и", "а", "но", "или", "либо", "да", "зато", "однако", "тоже", "также",
		"если", "чтобы", "чтоб", "потому", "так", "как", "когда", "хотя", "пока",
		"будто", "словно", "ибо", "поскольку", "причем", "притом", "дабы",
	},
	TagParticle: {
		"не", "ни", "же", "ли", "ль", "бы", "б", "вот", "вон", "лишь", "только",
		"даже", "уже", "ведь", "разве", "неужели", "именно", "почти",
		"пусть", "пускай", "давай", "ка",
	},
	TagInterjection: {
		"ах", "ох", "эх", "ух", "ой", "ай", "эй", "ого", "увы", "ура", "браво",
		"алло", "ну", "фу", "тьфу", "ага", "угу", "хм", "ой-ой",
	},
})

// pronoun forms whose lemma differs from the form itself
var pronounLemmas = map[string]string{
	"меня": "я", "мне": "я", "мной": "я", "мною": "я",
	"тебя": "ты", "тебе": "ты", "тобой": "ты", "тобою": "ты",
	"его": "он", "него": "он", "ему": "он", "нему": "он", "им": "он", "ним": "он", "нем": "он",
	"ее": "она", "нее": "она", "ей": "она", "ней": "она", "ею": "она", "нею": "она",
	"нас": "мы", "нам": "мы", "нами": "мы",
	"вас": "вы", "вам": "вы", "вами": "вы",
	"их": "они", "них": "они", "ими": "они", "ними": "они",
	"себе": "себя", "собой": "себя", "собою": "себя",
	"кого": "кто", "кому": "кто", "кем": "кто", "ком": "кто",
	"чего": "что", "чему": "что", "чем": "что",
	"никого": "никто", "никому": "никто", "ничего": "ничто", "ничему": "ничто",
}

func buildClosedClass(byPOS map[string][]string) map[string]lexeme {
	out := make(map[string]lexeme)
	for pos, forms := range byPOS {
		for _, form := range forms {
			if _, seen := out[form]; seen {
				continue
			}
			lemma := form
			if pos == TagPronoun {
				if l, ok := pronounLemmas[form]; ok {
					lemma = l
				}
			}
			out[form] = lexeme{lemma: lemma, pos: pos}
		}
	}
	return out
}

// SnowballAnalyzer is a dictionary-free MorphAnalyzer. Auxiliary words come
// from a closed-class lexicon; everything else is reduced with the Russian
// snowball stemmer and tagged UNKN. A SnowballAnalyzer is not safe for
// concurrent use.
type SnowballAnalyzer struct {
	tran transform.Transformer
	lang string
}

func isStressMark(r rune) bool {
	return r == '\u0301' || r == '\u0300'
}

func NewSnowballAnalyzer() *SnowballAnalyzer {
	return &SnowballAnalyzer{
		tran: transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isStressMark)), norm.NFC),
		lang: "russian",
	}
}

// fold lower-cases word, drops stress marks and folds ё to е.
func (a *SnowballAnalyzer) fold(word string) string {
	word = strings.ToLower(word)
	if s, _, err := transform.String(a.tran, word); err == nil {
		word = s
	}
	return strings.ReplaceAll(word, "ё", "е")
}

// Parse returns exactly one candidate for a non-empty word.
func (a *SnowballAnalyzer) Parse(word string) ([]Parse, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	folded := a.fold(word)
	if lx, ok := closedClass[folded]; ok {
		return []Parse{{Word: word, NormalForm: lx.lemma, Tag: NewGrammemeSet(lx.pos)}}, nil
	}

	stemmed, err := snowball.Stem(folded, a.lang, false)
	if err != nil {
		stemmed = folded
	}
	return []Parse{{Word: word, NormalForm: stemmed, Tag: NewGrammemeSet(TagUnknown)}}, nil
}
