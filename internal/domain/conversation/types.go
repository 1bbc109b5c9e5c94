package conversation

import (
	"time"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/domain/language"
)

// Speaker labels who produced a turn.
type Speaker string

const (
	SpeakerUser      Speaker = "You"
	SpeakerAssistant Speaker = "Assistant"
)

// Turn is one line of the conversation transcript.
type Turn struct {
	Speaker  Speaker      `json:"speaker" msgpack:"speaker"`
	Text     string       `json:"text" msgpack:"text"`
	Language language.Tag `json:"language" msgpack:"language"`
	At       time.Time    `json:"at" msgpack:"at"`
}

// Session is the caller-held conversation state. It is never shared across sessions.
type Session struct {
	ID             string    `json:"id" msgpack:"id"`
	Turns          []Turn    `json:"turns" msgpack:"turns"`
	CreatedAt      time.Time `json:"createdAt" msgpack:"created_at"`
	LastQuestionAt time.Time `json:"lastQuestionAt,omitempty" msgpack:"last_question_at"`
}

// Transcripts carries the two speech recognition attempts of a voice question.
type Transcripts struct {
	English string `json:"english"`
	Hindi   string `json:"hindi"`
}

// AskRequest is a question submitted to a session, typed, tapped or spoken.
type AskRequest struct {
	Question    string       `json:"question"`
	Language    string       `json:"language,omitempty"`
	Transcripts *Transcripts `json:"transcripts,omitempty"`
}

// AskResponse reports what happened to a submitted question.
type AskResponse struct {
	SessionID string        `json:"sessionId"`
	Skipped   bool          `json:"skipped"`
	Result    *faq.Response `json:"result,omitempty"`
	Turns     []Turn        `json:"turns,omitempty"`
}

// Suggestions are the quick questions offered per language.
type Suggestions struct {
	English []string `json:"english" yaml:"english"`
	Hindi   []string `json:"hindi" yaml:"hindi"`
}
