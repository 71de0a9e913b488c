package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// Key names are part of the durable contract: a restart restores from exactly
// these keys, and Clear must remove all of them.
const (
	keyCurrentUser      = "currentUser"
	keySession          = "session"
	keySessionTimestamp = "sessionTimestamp"
	keyIsAuthenticated  = "isAuthenticated"
)

// RedisSessionStore persists the current session in Redis so an authenticated
// session survives process restarts.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

var _ portsrepo.SessionStore = (*RedisSessionStore)(nil)

func (s *RedisSessionStore) Persist(ctx context.Context, identity domain.User, session domain.Session) error {
	userJSON, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal session identity: %w", err)
	}
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyCurrentUser, userJSON, 0)
	pipe.Set(ctx, keySession, sessionJSON, 0)
	pipe.Set(ctx, keySessionTimestamp, session.IssuedAt.UTC().Format(time.RFC3339Nano), 0)
	pipe.Set(ctx, keyIsAuthenticated, "true", 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Restore(ctx context.Context) (*domain.User, *domain.Session, bool, error) {
	authed, err := s.client.Get(ctx, keyIsAuthenticated).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to read authenticated flag: %w", err)
	}
	if authed != "true" {
		return nil, nil, false, nil
	}

	userJSON, err := s.client.Get(ctx, keyCurrentUser).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to read persisted identity: %w", err)
	}
	sessionJSON, err := s.client.Get(ctx, keySession).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to read persisted session: %w", err)
	}

	var identity domain.User
	if err := json.Unmarshal([]byte(userJSON), &identity); err != nil {
		return nil, nil, false, fmt.Errorf("failed to unmarshal persisted identity: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, nil, false, fmt.Errorf("failed to unmarshal persisted session: %w", err)
	}
	return &identity, &session, true, nil
}

func (s *RedisSessionStore) Touch(ctx context.Context, at time.Time) error {
	if err := s.client.Set(ctx, keySessionTimestamp, at.UTC().Format(time.RFC3339Nano), 0).Err(); err != nil {
		return fmt.Errorf("failed to touch session timestamp: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, keyCurrentUser, keySession, keySessionTimestamp, keyIsAuthenticated).Err(); err != nil {
		return fmt.Errorf("failed to clear session keys: %w", err)
	}
	return nil
}
