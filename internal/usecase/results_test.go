package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

func TestResultManager_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves the result with the finish time", func(t *testing.T) {
		repo := &mockResultRepo{}
		manager := NewResultManager(discardLogger(), repo)
		manager.now = func() time.Time { return startTime }

		repo.On("Save", mock.Anything, mock.MatchedBy(func(r *entity.Result) bool {
			return r.Game == entity.GameFlags && r.SessionID == "s1" && r.Score == 42 && r.FinishedAt.Equal(startTime)
		})).Return(nil).Once()

		manager.Record(ctx, entity.GameFlags, "s1", 42)

		repo.AssertExpectations(t)
	})

	t.Run("Failure is only logged", func(t *testing.T) {
		repo := &mockResultRepo{}
		manager := NewResultManager(discardLogger(), repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(errDiskIsFull).Once()

		assert.NotPanics(t, func() { manager.Record(ctx, entity.GameTiles, "s1", 2048) })
		repo.AssertExpectations(t)
	})
}

func TestResultManager_Top(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown game", func(t *testing.T) {
		manager := NewResultManager(discardLogger(), &mockResultRepo{})

		_, err := manager.Top(ctx, entity.GameOmok, 5)

		require.ErrorIs(t, err, apperror.ErrUnknownGame)
	})

	t.Run("Limit defaults and caps", func(t *testing.T) {
		repo := &mockResultRepo{}
		manager := NewResultManager(discardLogger(), repo)

		expected := []entity.Result{{ID: 1, Game: entity.GameTiles, Score: 900}}
		repo.On("Top", mock.Anything, entity.GameTiles, 10).Return(expected, nil).Once()
		repo.On("Top", mock.Anything, entity.GameTiles, 50).Return(expected, nil).Once()

		top, err := manager.Top(ctx, entity.GameTiles, 0)
		require.NoError(t, err)
		assert.Equal(t, expected, top)

		_, err = manager.Top(ctx, entity.GameTiles, 500)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
