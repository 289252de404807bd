package websocket

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/colormatch"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/omok"
	"github.com/rocketscienceinc/arcade-backend/internal/tiles"
)

// fakeTiles keeps one game per session and moves by bumping the score.
type fakeTiles struct {
	mu    sync.Mutex
	games map[string]*entity.TileGame
	moves []entity.Direction
}

func newFakeTiles() *fakeTiles {
	return &fakeTiles{games: make(map[string]*entity.TileGame)}
}

func (that *fakeTiles) New(_ context.Context, sessionID string) (*entity.TileGame, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := &entity.TileGame{ID: sessionID, Status: entity.StatusOngoing}
	that.games[sessionID] = game

	return game, nil
}

func (that *fakeTiles) State(ctx context.Context, sessionID string) (*entity.TileGame, error) {
	that.mu.Lock()
	game, ok := that.games[sessionID]
	that.mu.Unlock()

	if !ok {
		return that.New(ctx, sessionID)
	}

	return game, nil
}

func (that *fakeTiles) Move(_ context.Context, sessionID string, dir entity.Direction) (*entity.TileGame, tiles.Outcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves = append(that.moves, dir)

	game, ok := that.games[sessionID]
	if !ok {
		return nil, tiles.Outcome{}, apperror.ErrGameIsNotStarted
	}

	if game.IsFinished() {
		return game, tiles.Outcome{}, apperror.ErrGameFinished
	}

	game.Score += 4

	return game, tiles.Outcome{Direction: dir, Moved: true, Gained: 4}, nil
}

func (that *fakeTiles) KeepPlaying(_ context.Context, sessionID string) (*entity.TileGame, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[sessionID]
	if !ok {
		return nil, apperror.ErrGameIsNotStarted
	}

	return game, nil
}

func (that *fakeTiles) finish(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[sessionID].Status = entity.StatusFinished
}

func (that *fakeTiles) directions() []entity.Direction {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.Direction(nil), that.moves...)
}

// fakeOmok runs the real rules over a map of games.
type fakeOmok struct {
	mu    sync.Mutex
	games map[string]*entity.OmokGame
}

func (that *fakeOmok) New(_ context.Context, sessionID string) (*entity.OmokGame, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := omok.NewGame(sessionID)
	that.games[sessionID] = game

	return game, nil
}

func (that *fakeOmok) State(ctx context.Context, sessionID string) (*entity.OmokGame, error) {
	that.mu.Lock()
	game, ok := that.games[sessionID]
	that.mu.Unlock()

	if !ok {
		return that.New(ctx, sessionID)
	}

	return game, nil
}

func (that *fakeOmok) Place(_ context.Context, sessionID string, row, col int) (*entity.OmokGame, omok.Placement, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[sessionID]
	if !ok {
		return nil, omok.Placement{}, apperror.ErrGameIsNotStarted
	}

	placement, err := omok.Place(game, row, col)

	return game, placement, err
}

// fakeColorMatch counts hides so tests can watch the memorize timer.
type fakeColorMatch struct {
	mu     sync.Mutex
	game   *entity.ColorMatchGame
	hidden chan int
}

func (that *fakeColorMatch) Start(_ context.Context, sessionID string) (*entity.ColorMatchGame, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	deal := 1
	if that.game != nil {
		deal = that.game.Deal + 1
	}

	that.game = &entity.ColorMatchGame{ID: sessionID, Status: entity.StatusMemorize, Round: 1, Deal: deal}

	return that.game, nil
}

func (that *fakeColorMatch) State(_ context.Context, _ string) (*entity.ColorMatchGame, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	return that.game, nil
}

func (that *fakeColorMatch) Hide(_ context.Context, _ string, deal int) (*entity.ColorMatchGame, bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game.Deal != deal || that.game.Status != entity.StatusMemorize {
		return that.game, false, nil
	}

	that.game.Status = entity.StatusOngoing
	that.hidden <- deal

	return that.game, true, nil
}

func (that *fakeColorMatch) Flip(_ context.Context, _ string, index int) (*entity.ColorMatchGame, colormatch.FlipResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game.Status == entity.StatusMemorize {
		return that.game, colormatch.FlipResult{}, apperror.ErrLocked
	}

	// every flip clears the round in this fake
	that.game.Round++
	that.game.Deal++
	that.game.Status = entity.StatusMemorize

	return that.game, colormatch.FlipResult{Index: index, RoundComplete: true}, nil
}

type fakeResults struct{}

func (fakeResults) Top(_ context.Context, game string, _ int) ([]entity.Result, error) {
	if game != entity.GameTiles {
		return nil, apperror.ErrUnknownGame
	}

	return []entity.Result{{ID: 1, Game: game, SessionID: "s1", Score: 2048}}, nil
}
