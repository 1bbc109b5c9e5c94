package faq

import (
	"strings"
	"unicode"

	"github.com/yanqian/omx-assistant/internal/domain/language"
)

// normalizeQuestion lowercases q, drops every rune that is neither a word rune
// nor whitespace, collapses whitespace runs to one space and trims the result.
func normalizeQuestion(q string) string {
	lowered := strings.ToLower(q)
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if language.IsWordRune(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if unicode.IsSpace(r) && !lastSpace {
			builder.WriteByte(' ')
			lastSpace = true
		}
		// punctuation is removed without acting as a separator
	}
	return strings.TrimSpace(builder.String())
}

// Normalize exposes the matcher normalization to other layers (analytics keys, CLI).
// Combining marks count as word runes, so "कहाँ है।" keeps its vowel signs and
// becomes "कहाँ है" where a plain \w class would yield "कह ह".
func Normalize(q string) string {
	return normalizeQuestion(q)
}

func tokenSet(normalized string) map[string]struct{} {
	fields := strings.Fields(normalized)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
