package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps one game state per session id.
type SessionRepository[T any] interface {
	Save(ctx context.Context, id string, session *T) error
	GetByID(ctx context.Context, id string) (*T, error)
}

type dbSession[T any] struct {
	client *redis.Client
	game   string
	ttl    time.Duration
}

// NewSessionRepository stores game states under session:<game>:<id>, expiring after ttl of inactivity.
func NewSessionRepository[T any](client *redis.Client, game string, ttl time.Duration) SessionRepository[T] {
	return &dbSession[T]{
		client: client,
		game:   game,
		ttl:    ttl,
	}
}

func (that *dbSession[T]) key(id string) string {
	return "session:" + that.game + ":" + id
}

func (that *dbSession[T]) Save(ctx context.Context, id string, session *T) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal %s session: %w", that.game, err)
	}

	if err = that.client.Set(ctx, that.key(id), sessionJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s session: %w", that.game, err)
	}

	return nil
}

func (that *dbSession[T]) GetByID(ctx context.Context, id string) (*T, error) {
	response, err := that.client.Get(ctx, that.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get %s session: %w", that.game, err)
	}

	var session T
	if err = json.Unmarshal([]byte(response), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s session: %w", that.game, err)
	}

	return &session, nil
}
