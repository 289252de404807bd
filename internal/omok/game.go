package omok

import (
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

func NewGame(id string) *entity.OmokGame {
	return &entity.OmokGame{
		ID:     id,
		Turn:   entity.StoneBlack,
		Status: entity.StatusOngoing,
	}
}

// Place puts the current player's stone at (row, col). Rejected placements
// return an error and leave game unchanged.
func Place(game *entity.OmokGame, row, col int) (Placement, error) {
	if game.IsFinished() {
		return Placement{}, apperror.ErrGameFinished
	}

	board, placement, err := PlaceStone(game.Board, row, col, game.Turn)
	if err != nil {
		return Placement{}, fmt.Errorf("invalid placement at (%d, %d): %w", row, col, err)
	}

	game.Board = board
	game.Moves++

	switch {
	case placement.Win:
		game.Status = entity.StatusFinished
		game.Winner = placement.Player
		game.WinningLine = placement.Line
		game.Turn = entity.StoneEmpty
	case placement.Draw:
		game.Status = entity.StatusFinished
		game.Draw = true
		game.Turn = entity.StoneEmpty
	default:
		game.Turn = game.Turn.Opponent()
	}

	return placement, nil
}
