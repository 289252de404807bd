package tiles

import (
	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

// Outcome is the change description of one move, in the order it happened:
// slide and merge, spawn, then terminal evaluation.
type Outcome struct {
	Direction entity.Direction `json:"direction"`
	Moved     bool             `json:"moved"`
	Merges    []entity.Tile    `json:"merges,omitempty"`
	Gained    int              `json:"gained"`
	Spawned   *entity.Tile     `json:"spawned,omitempty"`
	Won       bool             `json:"won"`
	Over      bool             `json:"over"`
}

func NewGame(id string, bestScore int, rnd pkg.Random) *entity.TileGame {
	game := &entity.TileGame{
		ID:        id,
		BestScore: bestScore,
		Status:    entity.StatusOngoing,
	}

	SpawnTile(&game.Grid, rnd)
	SpawnTile(&game.Grid, rnd)

	return game
}

// Move applies one directional move to game. A move that changes nothing
// returns an Outcome with Moved false and leaves game untouched.
func Move(game *entity.TileGame, dir entity.Direction, rnd pkg.Random) (Outcome, error) {
	switch {
	case game.IsFinished():
		return Outcome{}, apperror.ErrGameFinished
	case game.IsWon():
		return Outcome{}, apperror.ErrLocked
	}

	result, err := ApplyMove(game.Grid, dir)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Direction: dir, Moved: result.Moved}
	if !result.Moved {
		return outcome, nil
	}

	game.Grid = result.Grid
	game.Score += result.Gained
	game.Moves++

	if game.Score > game.BestScore {
		game.BestScore = game.Score
	}

	outcome.Merges = result.Merges
	outcome.Gained = result.Gained

	if tile, ok := SpawnTile(&game.Grid, rnd); ok {
		outcome.Spawned = &tile
	}

	switch {
	case HasTile(game.Grid, entity.WinningTile) && !game.Won:
		game.Won = true
		game.Status = entity.StatusWon
		outcome.Won = true
	case IsGameOver(game.Grid):
		game.Status = entity.StatusFinished
		outcome.Over = true
	}

	return outcome, nil
}

// KeepPlaying dismisses the win overlay. It is a no-op in any other state.
func KeepPlaying(game *entity.TileGame) {
	if game.IsWon() {
		game.Status = entity.StatusOngoing
	}
}
