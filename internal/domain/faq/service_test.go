package faq

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/omx-assistant/internal/domain/language"
	apperrors "github.com/yanqian/omx-assistant/pkg/errors"
)

func TestServiceAnswerScenarios(t *testing.T) {
	svc, _ := newServiceUnderTest(t, &stubSource{batches: [][]Entry{omxEntries()}})
	ctx := context.Background()

	resp := svc.Answer(ctx, Request{Question: "What are your business hours?"})
	require.True(t, resp.Found)
	require.Equal(t, language.English, resp.QuestionLanguage)
	require.Equal(t, "We're open from 9 AM to 6 PM, Monday to Friday.", resp.Answer)
	require.Equal(t, language.English, resp.AnswerLanguage)
	require.Equal(t, "business_hours_en", resp.MatchedID)
	require.Equal(t, 1.0, resp.Score)

	resp = svc.Answer(ctx, Request{Question: "aapke vyapar ke ghante kya hain"})
	require.True(t, resp.Found)
	require.Equal(t, language.Hindi, resp.QuestionLanguage)
	require.Equal(t, "हम सोमवार से शुक्रवार सुबह 9 बजे से शाम 6 बजे तक खुले रहते हैं।", resp.Answer)
	require.Equal(t, language.Hindi, resp.AnswerLanguage)

	resp = svc.Answer(ctx, Request{Question: "banana bread recipe"})
	require.False(t, resp.Found)
	require.Equal(t, language.English, resp.QuestionLanguage)
	require.Equal(t, FallbackEnglish, resp.Answer)
	require.Equal(t, language.English, resp.AnswerLanguage)
	require.Empty(t, resp.MatchedQuestion)

	resp = svc.Answer(ctx, Request{Question: ""})
	require.False(t, resp.Found)
	require.Equal(t, language.English, resp.QuestionLanguage)
	require.Equal(t, FallbackEnglish, resp.Answer)

	resp = svc.Answer(ctx, Request{Question: "What IS OMX Digital??"})
	require.True(t, resp.Found)
	require.Equal(t, "what is omx digital", resp.MatchedQuestion)
}

func TestServiceHindiFallback(t *testing.T) {
	svc, _ := newServiceUnderTest(t, &stubSource{batches: [][]Entry{omxEntries()}})

	resp := svc.Answer(context.Background(), Request{Question: "tum kab aaoge"})
	require.False(t, resp.Found)
	require.Equal(t, language.Hindi, resp.QuestionLanguage)
	require.Equal(t, FallbackHindi, resp.Answer)
	require.Equal(t, language.Hindi, resp.AnswerLanguage)
}

func TestServiceResolveUsesSuppliedLanguage(t *testing.T) {
	svc, _ := newServiceUnderTest(t, &stubSource{batches: [][]Entry{omxEntries()}})
	ctx := context.Background()

	resp := svc.Resolve(ctx, "banana bread recipe", language.Hindi)
	require.Equal(t, FallbackHindi, resp.Answer)
	require.Equal(t, language.Hindi, resp.QuestionLanguage)

	resp = svc.Resolve(ctx, "aapke vyapar ke ghante kya hain", "")
	require.Equal(t, language.Hindi, resp.QuestionLanguage)
}

func TestServiceDetectsAnswerLanguageIndependently(t *testing.T) {
	svc, _ := newServiceUnderTest(t, &stubSource{batches: [][]Entry{{
		{ID: "asym", Question: "what are your business hours", Answer: "हम सुबह 9 बजे से शाम 6 बजे तक खुले रहते हैं"},
	}}})

	resp := svc.Answer(context.Background(), Request{Question: "What are your business hours?"})
	require.True(t, resp.Found)
	require.Equal(t, language.English, resp.QuestionLanguage)
	require.Equal(t, language.Hindi, resp.AnswerLanguage)
	require.Equal(t, "हम सुबह 9 बजे से शाम 6 बजे तक खुले रहते हैं", resp.Answer)
}

func TestServiceAnswerIsIdempotent(t *testing.T) {
	svc, _ := newServiceUnderTest(t, &stubSource{batches: [][]Entry{omxEntries()}})
	ctx := context.Background()
	for _, q := range []string{"how does it work", "random words here", "", "aapka office kahan hai"} {
		first := svc.Answer(ctx, Request{Question: q})
		second := svc.Answer(ctx, Request{Question: q})
		require.Equal(t, first, second)
		require.NotEmpty(t, first.Answer)
	}
}

func TestServiceCountsQueries(t *testing.T) {
	svc, store := newServiceUnderTest(t, &stubSource{batches: [][]Entry{omxEntries()}})
	ctx := context.Background()

	svc.Answer(ctx, Request{Question: "What is your pricing?"})
	svc.Answer(ctx, Request{Question: "Banana, bread!"})
	svc.Answer(ctx, Request{Question: "???"})

	require.Equal(t, []increment{
		{bucket: BucketMatched, canonical: "what is your pricing", display: "what is your pricing"},
		{bucket: BucketUnanswered, canonical: "banana bread", display: "Banana, bread!"},
	}, store.increments)

	store.top = []TrendingQuery{{Query: "what is your pricing", Count: 1}}
	recs, err := svc.Trending(ctx)
	require.NoError(t, err)
	require.Equal(t, store.top, recs)
	require.Equal(t, BucketMatched, store.lastBucket)

	_, err = svc.Unanswered(ctx)
	require.NoError(t, err)
	require.Equal(t, BucketUnanswered, store.lastBucket)
	require.Equal(t, 5, store.lastLimit)
}

func TestServiceStoreFailuresDoNotFailQueries(t *testing.T) {
	store := &stubStore{err: errors.New("boom")}
	svc, err := NewService(Config{TopRecommendations: 5}, &stubSource{batches: [][]Entry{omxEntries()}}, store, language.NewDetector(), newTestLogger())
	require.NoError(t, err)

	resp := svc.Answer(context.Background(), Request{Question: "do you offer demos"})
	require.True(t, resp.Found)

	_, err = svc.Trending(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeFAQError))
}

func TestServiceReload(t *testing.T) {
	source := &stubSource{batches: [][]Entry{
		omxEntries(),
		{{ID: "only", Question: "is this reloaded", Answer: "Yes it is."}},
	}}
	svc, _ := newServiceUnderTest(t, source)
	ctx := context.Background()

	count, err := svc.Reload(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Len(t, svc.Entries(ctx), 1)
	require.True(t, svc.Answer(ctx, Request{Question: "is this reloaded?"}).Found)
	require.False(t, svc.Answer(ctx, Request{Question: "what is omx digital"}).Found)

	source.err = errors.New("source offline")
	_, err = svc.Reload(ctx)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeCatalogError))
	require.Len(t, svc.Entries(ctx), 1)
}

func TestNewServiceRejectsInvalidCatalog(t *testing.T) {
	_, err := NewService(Config{}, &stubSource{batches: [][]Entry{{{ID: "x", Question: "q"}}}}, nil, language.NewDetector(), newTestLogger())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeCatalogError))

	_, err = NewService(Config{}, nil, nil, language.NewDetector(), newTestLogger())
	require.Error(t, err)
}

func TestFallbackMessage(t *testing.T) {
	require.Equal(t, FallbackHindi, FallbackMessage(language.Hindi))
	require.Equal(t, FallbackEnglish, FallbackMessage(language.English))
	require.Equal(t, FallbackEnglish, FallbackMessage(""))
}

func newServiceUnderTest(t *testing.T, source *stubSource) (Service, *stubStore) {
	t.Helper()
	store := &stubStore{}
	svc, err := NewService(Config{MatchThreshold: DefaultMatchThreshold, TopRecommendations: 5}, source, store, language.NewDetector(), newTestLogger())
	require.NoError(t, err)
	return svc, store
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSource struct {
	batches [][]Entry
	calls   int
	err     error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(context.Context) ([]Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	idx := s.calls
	if idx >= len(s.batches) {
		idx = len(s.batches) - 1
	}
	s.calls++
	return s.batches[idx], nil
}

type increment struct {
	bucket    Bucket
	canonical string
	display   string
}

type stubStore struct {
	increments []increment
	top        []TrendingQuery
	lastBucket Bucket
	lastLimit  int
	err        error
}

func (s *stubStore) IncrementQuery(_ context.Context, bucket Bucket, canonical, display string) error {
	if s.err != nil {
		return s.err
	}
	s.increments = append(s.increments, increment{bucket: bucket, canonical: canonical, display: display})
	return nil
}

func (s *stubStore) TopQueries(_ context.Context, bucket Bucket, limit int) ([]TrendingQuery, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastBucket = bucket
	s.lastLimit = limit
	return s.top, nil
}
