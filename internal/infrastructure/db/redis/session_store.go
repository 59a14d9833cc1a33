package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marketbay/storefront/internal/core/domain"
)

const (
	fieldToken    = "token"
	fieldIdentity = "identity"
)

// SessionStore persists sessions as Redis hashes, one per browser sid.
// Key format: session:<sid>, with the bearer token and the JSON identity in
// separate fields. Entries expire after the configured TTL so abandoned
// browsers do not accumulate credentials.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Save stores (or replaces) the session for sid and resets its TTL.
func (s *SessionStore) Save(ctx context.Context, sid string, sess *domain.Session) error {
	identity, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	key := s.key(sid)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, fieldToken, sess.Token, fieldIdentity, identity)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the stored session for sid, or (nil, nil) when none exists.
func (s *SessionStore) Load(ctx context.Context, sid string) (*domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sid)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(fields[fieldIdentity]), &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	sess.Token = fields[fieldToken]
	return &sess, nil
}

// Delete removes the session for sid. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
