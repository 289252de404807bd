package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/repository"
)

type sessionRepo[T any] interface {
	Save(ctx context.Context, id string, session *T) error
	GetByID(ctx context.Context, id string) (*T, error)
}

// sessions runs game transitions against stored state, one at a time per session.
type sessions[T any] struct {
	repo   sessionRepo[T]
	locker *sessionLocker
	create func(ctx context.Context, id string) *T
}

func newSessions[T any](repo sessionRepo[T], locker *sessionLocker, create func(ctx context.Context, id string) *T) *sessions[T] {
	return &sessions[T]{
		repo:   repo,
		locker: locker,
		create: create,
	}
}

// update applies fn to the stored game. A missing game is reported as not started.
// Rejections from fn are returned together with the game.
func (that *sessions[T]) update(ctx context.Context, id string, fn func(game *T) error) (*T, error) {
	unlock := that.locker.Lock(id)
	defer unlock()

	game, err := that.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, apperror.ErrGameIsNotStarted
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return that.apply(ctx, id, game, fn)
}

// upsert is update with a fresh game in place of a missing one.
func (that *sessions[T]) upsert(ctx context.Context, id string, fn func(game *T) error) (*T, error) {
	unlock := that.locker.Lock(id)
	defer unlock()

	game, err := that.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		game, err = that.create(ctx, id), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return that.apply(ctx, id, game, fn)
}

// replace stores game as the session's state, discarding whatever was there.
func (that *sessions[T]) replace(ctx context.Context, id string, game *T) (*T, error) {
	unlock := that.locker.Lock(id)
	defer unlock()

	if err := that.repo.Save(ctx, id, game); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return game, nil
}

func (that *sessions[T]) apply(ctx context.Context, id string, game *T, fn func(game *T) error) (*T, error) {
	fnErr := fn(game)
	if fnErr != nil && !apperror.IsRejection(fnErr) {
		return nil, fnErr
	}

	if err := that.repo.Save(ctx, id, game); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return game, fnErr
}

func noop[T any](*T) error {
	return nil
}

// created adapts a constructor that needs no context.
func created[T any](create func(id string) *T) func(context.Context, string) *T {
	return func(_ context.Context, id string) *T {
		return create(id)
	}
}
