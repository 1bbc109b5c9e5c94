package conversation

import (
	"context"
	"time"
)

// SessionStore persists sessions for at most ttl after their last write.
type SessionStore interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, session Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// TurnPublisher pushes freshly appended turns to live listeners of a session.
type TurnPublisher interface {
	Publish(sessionID string, turns []Turn)
}
