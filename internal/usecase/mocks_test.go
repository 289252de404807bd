package usecase

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/repository"
)

// memorySessions is an in-memory session store that copies on every call, like the redis one.
type memorySessions[T any] struct {
	mu    sync.Mutex
	items map[string]T
	saves int
}

func newMemorySessions[T any]() *memorySessions[T] {
	return &memorySessions[T]{items: make(map[string]T)}
}

func (that *memorySessions[T]) Save(_ context.Context, id string, session *T) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.items[id] = *session
	that.saves++

	return nil
}

func (that *memorySessions[T]) GetByID(_ context.Context, id string) (*T, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	item, ok := that.items[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &item, nil
}

type mockSessionRepo[T any] struct {
	mock.Mock
}

func (that *mockSessionRepo[T]) Save(ctx context.Context, id string, session *T) error {
	args := that.Called(ctx, id, session)
	return args.Error(0)
}

func (that *mockSessionRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := that.Called(ctx, id)
	session, _ := args.Get(0).(*T)
	return session, args.Error(1)
}

type mockBestScoreRepo struct {
	mock.Mock
}

func (that *mockBestScoreRepo) Get(ctx context.Context) (int, error) {
	args := that.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (that *mockBestScoreRepo) Save(ctx context.Context, score int) (int, error) {
	args := that.Called(ctx, score)
	return args.Int(0), args.Error(1)
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func (that *mockResultRepo) Top(ctx context.Context, game string, limit int) ([]entity.Result, error) {
	args := that.Called(ctx, game, limit)
	results, _ := args.Get(0).([]entity.Result)
	return results, args.Error(1)
}

type mockResultRecorder struct {
	mock.Mock
}

func (that *mockResultRecorder) Record(ctx context.Context, game, sessionID string, score int) {
	that.Called(ctx, game, sessionID, score)
}
