package conversation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/domain/language"
	apperrors "github.com/yanqian/omx-assistant/pkg/errors"
	"github.com/yanqian/omx-assistant/pkg/metrics"
	"github.com/yanqian/omx-assistant/pkg/util"
)

// Service orchestrates questions within explicit sessions.
type Service interface {
	Create(ctx context.Context) (Session, error)
	Ask(ctx context.Context, sessionID string, req AskRequest) (AskResponse, error)
	History(ctx context.Context, sessionID string) (Session, error)
	Reset(ctx context.Context, sessionID string) error
	Suggestions() Suggestions
}

// Answerer resolves a question against the FAQ catalog. faq.Service satisfies it.
type Answerer interface {
	Detect(text string) language.Tag
	Resolve(ctx context.Context, question string, questionLang language.Tag) faq.Response
}

type service struct {
	cfg       Config
	answerer  Answerer
	store     SessionStore
	publisher TurnPublisher
	logger    *slog.Logger
	clock     func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Option customizes the conversation service.
type Option func(*service)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithPublisher streams appended turns to live listeners.
func WithPublisher(publisher TurnPublisher) Option {
	return func(s *service) {
		s.publisher = publisher
	}
}

// NewService wires the conversation orchestrator.
func NewService(cfg Config, answerer Answerer, store SessionStore, logger *slog.Logger, opts ...Option) (Service, error) {
	if answerer == nil {
		return nil, errors.New("conversation answerer is required")
	}
	if store == nil {
		return nil, errors.New("conversation session store is required")
	}
	s := &service{
		cfg:      cfg.withDefaults(),
		answerer: answerer,
		store:    store,
		logger:   logger.With("component", "conversation.service"),
		clock:    util.NowUTC,
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) Create(ctx context.Context) (Session, error) {
	session := Session{
		ID:        uuid.NewString(),
		Turns:     []Turn{},
		CreatedAt: s.clock(),
	}
	if err := s.store.Save(ctx, session, s.cfg.SessionTTL); err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeSessionError, "failed to create session", err)
	}
	s.logger.Debug("session created", "session_id", session.ID)
	return session, nil
}

func (s *service) Ask(ctx context.Context, sessionID string, req AskRequest) (AskResponse, error) {
	question, questionLang, err := s.prepareQuestion(req)
	if err != nil {
		metrics.ConversationQuestions.WithLabelValues("rejected").Inc()
		return AskResponse{}, err
	}

	if !s.acquire(sessionID) {
		metrics.ConversationQuestions.WithLabelValues("busy").Inc()
		return AskResponse{}, apperrors.Wrap(apperrors.CodeSessionBusy, "session is already processing a question", nil)
	}
	defer s.release(sessionID)

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return AskResponse{}, err
	}

	now := s.clock()
	if !session.LastQuestionAt.IsZero() && now.Sub(session.LastQuestionAt) < s.cfg.Debounce {
		metrics.ConversationQuestions.WithLabelValues("skipped").Inc()
		s.logger.Debug("question debounced", "session_id", sessionID)
		return AskResponse{SessionID: sessionID, Skipped: true}, nil
	}
	session.LastQuestionAt = now

	result := s.answerer.Resolve(ctx, question, questionLang)
	turns := []Turn{
		{Speaker: SpeakerUser, Text: question, Language: result.QuestionLanguage, At: now},
		{Speaker: SpeakerAssistant, Text: result.Answer, Language: result.AnswerLanguage, At: now},
	}
	session.Turns = trimHistory(append(session.Turns, turns...), s.cfg.HistoryLimit)

	if err := s.store.Save(ctx, session, s.cfg.SessionTTL); err != nil {
		return AskResponse{}, apperrors.Wrap(apperrors.CodeSessionError, "failed to save session", err)
	}
	if s.publisher != nil {
		s.publisher.Publish(sessionID, turns)
	}
	metrics.ConversationQuestions.WithLabelValues("answered").Inc()
	s.logger.Info("question answered",
		"session_id", sessionID,
		"question_language", result.QuestionLanguage,
		"found", result.Found,
	)
	return AskResponse{SessionID: sessionID, Result: &result, Turns: turns}, nil
}

func (s *service) History(ctx context.Context, sessionID string) (Session, error) {
	return s.load(ctx, sessionID)
}

func (s *service) Reset(ctx context.Context, sessionID string) error {
	if _, err := s.load(ctx, sessionID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return apperrors.Wrap(apperrors.CodeSessionError, "failed to delete session", err)
	}
	s.logger.Debug("session reset", "session_id", sessionID)
	return nil
}

func (s *service) Suggestions() Suggestions {
	return Suggestions{
		English: append([]string(nil), s.cfg.Suggestions.English...),
		Hindi:   append([]string(nil), s.cfg.Suggestions.Hindi...),
	}
}

func (s *service) prepareQuestion(req AskRequest) (string, language.Tag, error) {
	var (
		question string
		lang     language.Tag
	)
	if req.Transcripts != nil && strings.TrimSpace(req.Question) == "" {
		text, tag, ok := SelectTranscript(*req.Transcripts)
		if !ok {
			return "", "", apperrors.Wrap(apperrors.CodeInvalidInput, "could not recognize speech", nil)
		}
		question, lang = text, tag
	} else {
		question = strings.TrimSpace(req.Question)
	}
	if question == "" {
		return "", "", apperrors.Wrap(apperrors.CodeInvalidInput, "question is required", nil)
	}

	if req.Language != "" {
		tag, ok := language.Parse(req.Language)
		if !ok {
			return "", "", apperrors.Wrap(apperrors.CodeInvalidInput, "unsupported language "+req.Language, nil)
		}
		lang = tag
	}
	if lang == "" {
		lang = s.answerer.Detect(question)
	}
	return question, lang, nil
}

func (s *service) load(ctx context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, apperrors.Wrap(apperrors.CodeSessionNotFound, "session not found", nil)
	}
	session, ok, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeSessionError, "failed to load session", err)
	}
	if !ok {
		return Session{}, apperrors.Wrap(apperrors.CodeSessionNotFound, "session not found", nil)
	}
	return session, nil
}

func (s *service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *service) release(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}

func trimHistory(turns []Turn, limit int) []Turn {
	if limit <= 0 || len(turns) <= limit {
		return turns
	}
	return append([]Turn(nil), turns[len(turns)-limit:]...)
}
