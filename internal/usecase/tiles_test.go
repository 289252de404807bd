package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

var (
	errRedisDown  = errors.New("redis down")
	errDiskIsFull = errors.New("disk is full")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type tilesFixture struct {
	manager  *TilesManager
	repo     *memorySessions[entity.TileGame]
	best     *mockBestScoreRepo
	recorder *mockResultRecorder
}

func newTilesFixture(t *testing.T, rnd pkg.Random) *tilesFixture {
	t.Helper()

	f := &tilesFixture{
		repo:     newMemorySessions[entity.TileGame](),
		best:     &mockBestScoreRepo{},
		recorder: &mockResultRecorder{},
	}
	f.manager = NewTilesManager(discardLogger(), f.repo, f.best, f.recorder, rnd)

	t.Cleanup(func() {
		f.best.AssertExpectations(t)
		f.recorder.AssertExpectations(t)
	})

	return f
}

func (that *tilesFixture) seed(t *testing.T, game entity.TileGame) {
	t.Helper()

	require.NoError(t, that.repo.Save(context.Background(), game.ID, &game))
}

func TestTilesManager_New(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads the best score", func(t *testing.T) {
		// Given: a stored best score of 300
		f := newTilesFixture(t, pkg.NewSequence(0))
		f.best.On("Get", mock.Anything).Return(300, nil).Once()

		// When: a new game starts
		game, err := f.manager.New(ctx, "s1")

		// Then: it carries the best score and two tiles
		require.NoError(t, err)
		assert.Equal(t, 300, game.BestScore)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, 2, 16-countEmpty(game.Grid))
	})

	t.Run("Unreadable best score counts as zero", func(t *testing.T) {
		// Given: redis is down
		f := newTilesFixture(t, pkg.NewSequence(0))
		f.best.On("Get", mock.Anything).Return(0, errRedisDown).Once()

		// When: a new game starts
		game, err := f.manager.New(ctx, "s1")

		// Then: the game still starts
		require.NoError(t, err)
		assert.Equal(t, 0, game.BestScore)
	})
}

func TestTilesManager_Move(t *testing.T) {
	ctx := context.Background()

	t.Run("Merge raises and saves the best score", func(t *testing.T) {
		// Given: [2,2,0,0] on the top row
		f := newTilesFixture(t, pkg.NewSequence(0))
		game := entity.TileGame{ID: "s1", Status: entity.StatusOngoing}
		game.Grid[0] = [4]int{2, 2, 0, 0}
		f.seed(t, game)

		f.best.On("Save", mock.Anything, 4).Return(4, nil).Once()

		// When: moving left
		updated, outcome, err := f.manager.Move(ctx, "s1", entity.DirectionLeft)
		require.NoError(t, err)

		// Then: the merge is scored and stored
		assert.True(t, outcome.Moved)
		assert.Equal(t, 4, outcome.Gained)
		assert.Equal(t, 4, updated.Score)
		assert.Equal(t, 4, updated.BestScore)

		stored, err := f.repo.GetByID(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("Best score failure does not fail the move", func(t *testing.T) {
		// Given: a mergeable row and a failing best score store
		f := newTilesFixture(t, pkg.NewSequence(0))
		game := entity.TileGame{ID: "s1", Status: entity.StatusOngoing}
		game.Grid[0] = [4]int{2, 2, 0, 0}
		f.seed(t, game)

		f.best.On("Save", mock.Anything, 4).Return(0, errRedisDown).Once()

		// When: moving left
		updated, _, err := f.manager.Move(ctx, "s1", entity.DirectionLeft)

		// Then: the move still counts
		require.NoError(t, err)
		assert.Equal(t, 4, updated.BestScore)
	})

	t.Run("Score below the best is not saved", func(t *testing.T) {
		f := newTilesFixture(t, pkg.NewSequence(0))
		game := entity.TileGame{ID: "s1", Status: entity.StatusOngoing, BestScore: 1000}
		game.Grid[0] = [4]int{2, 2, 0, 0}
		f.seed(t, game)

		updated, outcome, err := f.manager.Move(ctx, "s1", entity.DirectionLeft)

		require.NoError(t, err)
		assert.True(t, outcome.Moved)
		assert.Equal(t, 1000, updated.BestScore)
	})

	t.Run("Move that changes nothing", func(t *testing.T) {
		// Given: a row already packed to the left
		f := newTilesFixture(t, pkg.NewSequence(0))
		game := entity.TileGame{ID: "s1", Status: entity.StatusOngoing}
		game.Grid[0] = [4]int{2, 4, 0, 0}
		f.seed(t, game)

		// When: moving left
		updated, outcome, err := f.manager.Move(ctx, "s1", entity.DirectionLeft)

		// Then: no tile spawns
		require.NoError(t, err)
		assert.False(t, outcome.Moved)
		assert.Equal(t, game.Grid, updated.Grid)
	})

	t.Run("Game over is recorded", func(t *testing.T) {
		// Given: a board whose only free cell fills with no pair left
		f := newTilesFixture(t, pkg.NewSequence(0, 5))
		game := entity.TileGame{ID: "s1", Status: entity.StatusOngoing, Score: 100, BestScore: 500}
		game.Grid = entity.Grid{
			{0, 2, 4, 8},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 128},
		}
		f.seed(t, game)

		f.recorder.On("Record", mock.Anything, entity.GameTiles, "s1", 100).Once()

		// When: moving left
		updated, outcome, err := f.manager.Move(ctx, "s1", entity.DirectionLeft)

		// Then: the game is over
		require.NoError(t, err)
		assert.True(t, outcome.Over)
		assert.True(t, updated.IsFinished())

		// When: moving again
		_, _, err = f.manager.Move(ctx, "s1", entity.DirectionUp)

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Move without a game", func(t *testing.T) {
		f := newTilesFixture(t, pkg.NewSequence(0))

		game, _, err := f.manager.Move(ctx, "nobody", entity.DirectionLeft)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.Nil(t, game)
	})
}

func TestTilesManager_KeepPlaying(t *testing.T) {
	// Given: a won game
	f := newTilesFixture(t, pkg.NewSequence(0))
	f.seed(t, entity.TileGame{ID: "s1", Status: entity.StatusWon, Won: true})

	// When: the player keeps playing
	game, err := f.manager.KeepPlaying(context.Background(), "s1")

	// Then: moves are accepted again
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOngoing, game.Status)
	assert.True(t, game.Won)
}

func TestTilesManager_State(t *testing.T) {
	t.Run("Starts a game on first visit", func(t *testing.T) {
		f := newTilesFixture(t, pkg.NewSequence(0))
		f.best.On("Get", mock.Anything).Return(64, nil).Once()

		game, err := f.manager.State(context.Background(), "s1")

		require.NoError(t, err)
		assert.Equal(t, 64, game.BestScore)
	})

	t.Run("Session store failure is returned", func(t *testing.T) {
		repo := &mockSessionRepo[entity.TileGame]{}
		repo.On("GetByID", mock.Anything, "s1").Return(nil, errRedisDown).Once()
		manager := NewTilesManager(discardLogger(), repo, &mockBestScoreRepo{}, &mockResultRecorder{}, pkg.NewSequence(0))

		_, err := manager.State(context.Background(), "s1")

		require.ErrorIs(t, err, errRedisDown)
		repo.AssertExpectations(t)
	})
}

func countEmpty(grid entity.Grid) int {
	empty := 0
	for _, row := range grid {
		for _, v := range row {
			if v == 0 {
				empty++
			}
		}
	}
	return empty
}
