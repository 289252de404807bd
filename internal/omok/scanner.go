package omok

import (
	"slices"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

type axis struct {
	dRow, dCol int
}

// horizontal, vertical, diagonal, anti-diagonal.
var axes = [...]axis{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Placement is the result of putting one stone on the board.
type Placement struct {
	Cell   entity.Cell   `json:"cell"`
	Player entity.Stone  `json:"player"`
	Win    bool          `json:"win"`
	Draw   bool          `json:"draw"`
	Line   []entity.Cell `json:"line,omitempty"`
}

// PlaceStone puts player's stone at (row, col) on a copy of board and checks
// for a win. Only a run of exactly five wins; six or more in a row do not.
func PlaceStone(board entity.Board, row, col int, player entity.Stone) (entity.Board, Placement, error) {
	if !InBounds(row, col) {
		return board, Placement{}, apperror.ErrOutOfBounds
	}

	if !player.IsPlayer() {
		return board, Placement{}, apperror.ErrInvalidStone
	}

	if board[row][col] != entity.StoneEmpty {
		return board, Placement{}, apperror.ErrCellOccupied
	}

	board[row][col] = player
	placement := Placement{Cell: entity.Cell{Row: row, Col: col}, Player: player}

	for _, a := range axes {
		if line := runThrough(&board, row, col, a); len(line) == entity.WinLength {
			placement.Win = true
			placement.Line = line

			return board, placement, nil
		}
	}

	placement.Draw = IsFull(&board)

	return board, placement, nil
}

// runThrough collects the same-colored run through (row, col) along a,
// ordered from the negative end to the positive end.
func runThrough(board *entity.Board, row, col int, a axis) []entity.Cell {
	player := board[row][col]

	var backward []entity.Cell
	for r, c := row-a.dRow, col-a.dCol; InBounds(r, c) && board[r][c] == player; r, c = r-a.dRow, c-a.dCol {
		backward = append(backward, entity.Cell{Row: r, Col: c})
	}

	slices.Reverse(backward)
	line := append(backward, entity.Cell{Row: row, Col: col})

	for r, c := row+a.dRow, col+a.dCol; InBounds(r, c) && board[r][c] == player; r, c = r+a.dRow, c+a.dCol {
		line = append(line, entity.Cell{Row: r, Col: c})
	}

	return line
}

func InBounds(row, col int) bool {
	return row >= 0 && row < entity.BoardSize && col >= 0 && col < entity.BoardSize
}

func IsFull(board *entity.Board) bool {
	for row := range board {
		for col := range board[row] {
			if board[row][col] == entity.StoneEmpty {
				return false
			}
		}
	}

	return true
}
