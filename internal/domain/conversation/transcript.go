package conversation

import (
	"strings"
	"unicode/utf8"

	"github.com/yanqian/omx-assistant/internal/domain/language"
)

const minTranscriptRunes = 2

// SelectTranscript picks between the English and Hindi recognition results.
// Results shorter than two characters are discarded. When both survive, English
// wins unless the Hindi result has strictly more words.
func SelectTranscript(t Transcripts) (string, language.Tag, bool) {
	english := usableTranscript(t.English)
	hindi := usableTranscript(t.Hindi)
	switch {
	case english != "" && hindi != "":
		if len(strings.Fields(english)) >= len(strings.Fields(hindi)) {
			return english, language.English, true
		}
		return hindi, language.Hindi, true
	case english != "":
		return english, language.English, true
	case hindi != "":
		return hindi, language.Hindi, true
	default:
		return "", "", false
	}
}

func usableTranscript(text string) string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTranscriptRunes {
		return ""
	}
	return text
}
