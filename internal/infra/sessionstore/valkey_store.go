package sessionstore

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/yanqian/omx-assistant/internal/domain/conversation"
)

// ValkeyStore persists sessions in a Valkey-compatible database as msgpack blobs.
// Every write refreshes the key expiry so a session disappears with its TTL.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "omx"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, id string) (conversation.Session, bool, error) {
	if id == "" {
		return conversation.Session{}, false, nil
	}
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.sessionKey(id)).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return conversation.Session{}, false, nil
		}
		return conversation.Session{}, false, err
	}
	var session conversation.Session
	if err := msgpack.Unmarshal(payload, &session); err != nil {
		return conversation.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return session, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, session conversation.Session, ttl time.Duration) error {
	payload, err := msgpack.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	builder := s.client.B().Set().Key(s.sessionKey(session.ID)).Value(valkey.BinaryString(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, s.client.B().Del().Key(s.sessionKey(id)).Build()).Error()
}

func (s *ValkeyStore) sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

var _ conversation.SessionStore = (*ValkeyStore)(nil)
