package faq

import "github.com/yanqian/omx-assistant/internal/domain/language"

// Entry is a single catalog question with its pre-written answer.
type Entry struct {
	ID       string `json:"id" yaml:"id" toml:"id" validate:"required"`
	Question string `json:"question" yaml:"question" toml:"question" validate:"required"`
	Answer   string `json:"answer" yaml:"answer" toml:"answer" validate:"required"`
}

// MatchResult is the outcome of scanning the catalog for one question.
type MatchResult struct {
	Entry Entry
	Score float64
	Found bool
}

// Request encapsulates a FAQ lookup.
type Request struct {
	Question string `json:"question"`
}

// Response is returned to the HTTP transport and to the conversation layer.
type Response struct {
	Question         string       `json:"question"`
	QuestionLanguage language.Tag `json:"questionLanguage"`
	Answer           string       `json:"answer"`
	AnswerLanguage   language.Tag `json:"answerLanguage"`
	Found            bool         `json:"found"`
	MatchedQuestion  string       `json:"matchedQuestion,omitempty"`
	MatchedID        string       `json:"matchedId,omitempty"`
	Score            float64      `json:"score"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Bucket separates answered from unanswered query counters.
type Bucket string

const (
	// BucketMatched counts catalog questions that were served.
	BucketMatched Bucket = "matched"
	// BucketUnanswered counts normalized questions that fell back.
	BucketUnanswered Bucket = "unanswered"
)
