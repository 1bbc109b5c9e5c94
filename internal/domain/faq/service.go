package faq

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/yanqian/omx-assistant/internal/domain/language"
	apperrors "github.com/yanqian/omx-assistant/pkg/errors"
	"github.com/yanqian/omx-assistant/pkg/metrics"
)

const (
	// FallbackEnglish is returned when an English (or undetermined) question has no match.
	FallbackEnglish = "Sorry, I don't know the answer to this question. Please ask something else."
	// FallbackHindi is returned when a Hindi question has no match.
	FallbackHindi = "माफ कीजिए, मुझे इस प्रश्न का उत्तर नहीं पता। कृपया कोई अन्य प्रश्न पूछें।"
)

// FallbackMessage picks the fallback literal for the question's language.
func FallbackMessage(questionLang language.Tag) string {
	if questionLang == language.Hindi {
		return FallbackHindi
	}
	return FallbackEnglish
}

// Service exposes the bilingual FAQ capabilities.
type Service interface {
	Detect(text string) language.Tag
	Answer(ctx context.Context, req Request) Response
	Resolve(ctx context.Context, question string, questionLang language.Tag) Response
	Entries(ctx context.Context) []Entry
	Trending(ctx context.Context) ([]TrendingQuery, error)
	Unanswered(ctx context.Context) ([]TrendingQuery, error)
	Reload(ctx context.Context) (int, error)
}

// LanguageDetector classifies text. *language.Detector satisfies it.
type LanguageDetector interface {
	Detect(text string) language.Tag
}

type service struct {
	cfg      Config
	source   CatalogSource
	store    Store
	detector LanguageDetector
	logger   *slog.Logger
	matcher  atomic.Pointer[Matcher]
}

// NewService loads the initial catalog from source and wires up the FAQ domain.
func NewService(cfg Config, source CatalogSource, store Store, detector LanguageDetector, logger *slog.Logger) (Service, error) {
	if source == nil {
		return nil, errors.New("faq catalog source is required")
	}
	s := &service{
		cfg:      cfg,
		source:   source,
		store:    store,
		detector: detector,
		logger:   logger.With("component", "faq.service"),
	}
	matcher, err := s.loadMatcher(context.Background())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "initial catalog load failed", err)
	}
	s.matcher.Store(matcher)
	s.logger.Info("faq catalog loaded", "source", source.Name(), "entries", matcher.Catalog().Len())
	return s, nil
}

func (s *service) Detect(text string) language.Tag {
	return s.detector.Detect(text)
}

func (s *service) Answer(ctx context.Context, req Request) Response {
	return s.Resolve(ctx, req.Question, s.detector.Detect(req.Question))
}

func (s *service) Resolve(ctx context.Context, question string, questionLang language.Tag) Response {
	if !questionLang.Valid() {
		questionLang = s.detector.Detect(question)
	}
	matcher := s.matcher.Load()
	result := matcher.Match(question)
	metrics.FAQMatchScore.Observe(result.Score)

	resp := Response{
		Question:         question,
		QuestionLanguage: questionLang,
		Score:            result.Score,
	}
	answer, ok := "", false
	if result.Found {
		answer, ok = matcher.Catalog().Answer(result.Entry.Question)
	}
	if ok {
		resp.Found = true
		resp.Answer = answer
		// answers are detected on their own; the catalog may be asymmetric
		resp.AnswerLanguage = s.detector.Detect(answer)
		resp.MatchedQuestion = result.Entry.Question
		resp.MatchedID = result.Entry.ID
		s.count(ctx, BucketMatched, result.Entry.Question, result.Entry.Question)
		metrics.FAQQueries.WithLabelValues(string(questionLang), "matched").Inc()
	} else {
		resp.Answer = FallbackMessage(questionLang)
		resp.AnswerLanguage = questionLang
		s.count(ctx, BucketUnanswered, normalizeQuestion(question), question)
		metrics.FAQQueries.WithLabelValues(string(questionLang), "fallback").Inc()
	}

	s.logger.Debug("faq question resolved",
		"question_language", questionLang,
		"found", resp.Found,
		"matched_id", resp.MatchedID,
		"score", result.Score,
	)
	return resp
}

func (s *service) Entries(_ context.Context) []Entry {
	return s.matcher.Load().Catalog().Entries()
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	return s.top(ctx, BucketMatched)
}

func (s *service) Unanswered(ctx context.Context) ([]TrendingQuery, error) {
	return s.top(ctx, BucketUnanswered)
}

// Reload re-reads the catalog source and swaps the matcher in one step. The
// previous catalog stays active when loading fails.
func (s *service) Reload(ctx context.Context) (int, error) {
	matcher, err := s.loadMatcher(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("failed").Inc()
		s.logger.Warn("faq catalog reload failed", "source", s.source.Name(), "error", err)
		return 0, apperrors.Wrap(apperrors.CodeCatalogError, "catalog reload failed", err)
	}
	s.matcher.Store(matcher)
	metrics.CatalogReloads.WithLabelValues("ok").Inc()
	s.logger.Info("faq catalog reloaded", "source", s.source.Name(), "entries", matcher.Catalog().Len())
	return matcher.Catalog().Len(), nil
}

func (s *service) loadMatcher(ctx context.Context) (*Matcher, error) {
	entries, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(entries)
	if err != nil {
		return nil, err
	}
	metrics.CatalogEntries.Set(float64(catalog.Len()))
	return NewMatcher(catalog, s.cfg.MatchThreshold), nil
}

func (s *service) count(ctx context.Context, bucket Bucket, canonical, display string) {
	if s.store == nil || canonical == "" {
		return
	}
	if err := s.store.IncrementQuery(ctx, bucket, canonical, display); err != nil {
		s.logger.Warn("faq query counter increment failed", "bucket", bucket, "error", err)
	}
}

func (s *service) top(ctx context.Context, bucket Bucket) ([]TrendingQuery, error) {
	if s.store == nil {
		return nil, nil
	}
	recs, err := s.store.TopQueries(ctx, bucket, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeFAQError, "failed to load query counters", err)
	}
	return recs, nil
}
