package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("position is outside the board")
	ErrInvalidStone     = errors.New("invalid stone color")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownGame      = errors.New("unknown game")
	ErrLocked           = errors.New("input is locked")
	ErrCardRevealed     = errors.New("card is already revealed")
	ErrNoCommand        = errors.New("no command issued")
)

// rejections are input errors that leave the game untouched.
var rejections = []error{
	ErrGameFinished,
	ErrGameIsNotStarted,
	ErrCellOccupied,
	ErrOutOfBounds,
	ErrInvalidStone,
	ErrUnknownDirection,
	ErrUnknownAction,
	ErrLocked,
	ErrCardRevealed,
	ErrNoCommand,
}

// IsRejection reports whether err means the input was ignored without a state change.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
