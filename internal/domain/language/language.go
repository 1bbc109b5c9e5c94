package language

import "strings"

// Tag identifies the language of a question or an answer.
type Tag string

const (
	// English is the default tag whenever the heuristics are inconclusive.
	English Tag = "en"
	// Hindi covers both Devanagari and romanized Hindi input.
	Hindi Tag = "hi"
)

// Label returns the human readable language name.
func (t Tag) Label() string {
	if t == Hindi {
		return "Hindi"
	}
	return "English"
}

// Valid reports whether t is one of the supported tags.
func (t Tag) Valid() bool {
	return t == English || t == Hindi
}

// Parse maps user supplied values such as "hi", "hindi" or "EN" onto a Tag.
func Parse(raw string) (Tag, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en", "english", "en-us", "en-in":
		return English, true
	case "hi", "hindi", "hi-in":
		return Hindi, true
	default:
		return "", false
	}
}
