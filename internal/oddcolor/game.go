package oddcolor

import (
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

const (
	RoundDuration = 30 * time.Second

	minGridSize = 3
	maxGridSize = 4

	channelMin   = 30
	channelRange = 200
	channelMax   = 255

	tutorialShift = 40
	shift         = 25

	correctBonus = 10
	wrongPenalty = 5
	levelStep    = 100
)

type PickResult struct {
	Index   int  `json:"index"`
	Correct bool `json:"correct"`
	Gained  int  `json:"gained"`
}

func NewGame(id string) *entity.OddColorGame {
	return &entity.OddColorGame{
		ID:     id,
		Status: entity.StatusWaiting,
		Level:  1,
	}
}

// Start resets the counters, starts the clock and deals the first grid.
func Start(game *entity.OddColorGame, now time.Time, rnd pkg.Random) {
	game.Status = entity.StatusOngoing
	game.Score = 0
	game.Level = 1
	game.Streak = 0
	game.Grids = 0
	game.StartedAt = now
	game.Deadline = now.Add(RoundDuration)

	deal(game, rnd)
}

// Pick checks the clicked cell and deals the next grid either way.
func Pick(game *entity.OddColorGame, index int, now time.Time, rnd pkg.Random) (PickResult, error) {
	if err := checkRunning(game, now); err != nil {
		return PickResult{}, err
	}

	if index < 0 || index >= game.GridSize*game.GridSize {
		return PickResult{}, apperror.ErrOutOfBounds
	}

	result := PickResult{Index: index, Correct: index == game.OddIndex}

	if result.Correct {
		game.Streak++
		result.Gained = game.Streak * correctBonus
		game.Score += result.Gained
		game.Level = game.Score/levelStep + 1
	} else {
		game.Streak = 0
		result.Gained = -min(game.Score, wrongPenalty)
		game.Score += result.Gained
	}

	deal(game, rnd)

	return result, nil
}

// Skip throws the current grid away without touching the score.
func Skip(game *entity.OddColorGame, now time.Time, rnd pkg.Random) error {
	if err := checkRunning(game, now); err != nil {
		return err
	}

	deal(game, rnd)

	return nil
}

// Expire ends the game once the clock has run out. It reports whether the game was ended by this call.
func Expire(game *entity.OddColorGame, now time.Time) bool {
	if !game.IsOngoing() || now.Before(game.Deadline) {
		return false
	}

	game.Status = entity.StatusFinished

	return true
}

func checkRunning(game *entity.OddColorGame, now time.Time) error {
	if game.Status == entity.StatusWaiting {
		return apperror.ErrGameIsNotStarted
	}

	Expire(game, now)

	if !game.IsOngoing() {
		return apperror.ErrGameFinished
	}

	return nil
}

func GridSizeFor(level int) int {
	return min(maxGridSize, level/3+minGridSize)
}

func deal(game *entity.OddColorGame, rnd pkg.Random) {
	game.GridSize = GridSizeFor(game.Level)
	game.BaseColor = randomColor(rnd)

	diff := shift
	if game.Level == 1 {
		diff = tutorialShift
	}

	game.OddColor = adjust(game.BaseColor, diff, rnd)
	game.OddIndex = rnd.Intn(game.GridSize * game.GridSize)
	game.Grids++
}

func randomColor(rnd pkg.Random) entity.Color {
	return entity.Color{
		R: rnd.Intn(channelRange) + channelMin,
		G: rnd.Intn(channelRange) + channelMin,
		B: rnd.Intn(channelRange) + channelMin,
	}
}

// adjust raises one random channel by diff, capped at 255.
func adjust(color entity.Color, diff int, rnd pkg.Random) entity.Color {
	switch rnd.Intn(3) {
	case 0:
		color.R = min(channelMax, color.R+diff)
	case 1:
		color.G = min(channelMax, color.G+diff)
	default:
		color.B = min(channelMax, color.B+diff)
	}

	return color
}
