package language

import (
	"strings"
	"unicode"
)

const (
	devanagariFirst = '\u0900'
	devanagariLast  = '\u097F'

	minLexiconHits = 2
)

var defaultEnglishLexicon = []string{
	"what", "where", "when", "why", "how", "which", "who", "is", "are", "am",
	"the", "a", "an", "and", "or", "but", "if", "then", "this", "that",
	"have", "has", "had", "do", "does", "did", "will", "would", "could", "should",
	"can", "may", "might", "must", "i", "you", "he", "she", "it", "we", "they",
	"for", "with", "about", "against", "between", "into", "through", "during",
	"omx", "digital", "business", "hours", "contact", "support", "services",
}

var defaultHindiLexicon = []string{
	"kya", "kahan", "kab", "kyun", "kaise", "kaun", "kisne", "kisko",
	"hai", "hain", "tha", "the", "thi", "hum", "tum", "aap", "main", "tu",
	"mera", "tera", "uska", "hamara", "tumhara", "aapka", "unka",
	"omx", "digital", "vyapar", "ghante", "sampark", "samarthan", "sevayen",
}

// Detector classifies text as English or Hindi using script and lexicon
// heuristics. It holds no mutable state and is safe for concurrent use.
type Detector struct {
	english map[string]struct{}
	hindi   map[string]struct{}
}

// NewDetector builds a detector over the built-in lexicons.
func NewDetector() *Detector {
	return NewDetectorWithLexicons(defaultEnglishLexicon, defaultHindiLexicon)
}

// NewDetectorWithLexicons builds a detector over caller supplied marker words.
func NewDetectorWithLexicons(english, hindi []string) *Detector {
	return &Detector{
		english: toSet(english),
		hindi:   toSet(hindi),
	}
}

// Detect returns the language of text. Empty input is English.
func (d *Detector) Detect(text string) Tag {
	if text == "" {
		return English
	}
	if HasDevanagari(text) {
		return Hindi
	}

	words := wordSet(strings.ToLower(text))
	enCount := overlap(words, d.english)
	hiCount := overlap(words, d.hindi)

	// order matters: the English short-circuit runs before the Hindi threshold
	if enCount >= minLexiconHits && hiCount == 0 {
		return English
	}
	if hiCount >= minLexiconHits {
		return Hindi
	}
	return English
}

// HasDevanagari reports whether text contains a rune of the Devanagari block.
func HasDevanagari(text string) bool {
	for _, r := range text {
		if r >= devanagariFirst && r <= devanagariLast {
			return true
		}
	}
	return false
}

// IsWordRune reports whether r belongs to a word token. Combining marks count
// so Devanagari vowel signs stay attached to their consonants.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// Words splits text into word tokens, treating every non-word rune as a separator.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return !IsWordRune(r) })
}

func wordSet(text string) map[string]struct{} {
	words := Words(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func overlap(words, lexicon map[string]struct{}) int {
	count := 0
	for w := range words {
		if _, ok := lexicon[w]; ok {
			count++
		}
	}
	return count
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}
