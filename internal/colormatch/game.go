package colormatch

import (
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

const (
	MaxRounds        = 10
	MemorizeDuration = 3 * time.Second

	pointsPerRound = 10
)

var Palette = [...]string{
	"#e74c3c", "#e67e22", "#f39c12", "#f1c40f",
	"#2ecc71", "#1abc9c", "#3498db", "#9b59b6",
	"#e91e63", "#ff5722", "#795548", "#607d8b",
	"#3f51b5", "#009688", "#4caf50", "#ffeb3b",
}

// FlipResult describes what a single flip changed.
type FlipResult struct {
	Index         int    `json:"index"`
	Resolved      bool   `json:"resolved"`
	Matched       bool   `json:"matched"`
	Pair          [2]int `json:"pair"`
	Gained        int    `json:"gained"`
	RoundComplete bool   `json:"round_complete"`
	Finished      bool   `json:"finished"`
}

func NewGame(id string) *entity.ColorMatchGame {
	return &entity.ColorMatchGame{
		ID:        id,
		Status:    entity.StatusWaiting,
		MaxRounds: MaxRounds,
	}
}

// Start resets the game to round one and shows its cards.
func Start(game *entity.ColorMatchGame, rnd pkg.Random) {
	game.Score = 0
	game.FinalRound = 0
	game.Round = 1
	game.MaxRounds = MaxRounds

	deal(game, rnd)
}

// Hide ends the memorize phase of the board numbered deal. A call for any other board is ignored,
// including one from a game that was restarted since.
func Hide(game *entity.ColorMatchGame, deal int) bool {
	if game.Status != entity.StatusMemorize || game.Deal != deal {
		return false
	}

	for i := range game.Cards {
		game.Cards[i].FaceUp = game.Cards[i].Matched
	}

	game.Status = entity.StatusOngoing

	return true
}

// Flip turns card index face up. The second flip of a pair resolves it at once,
// and matching the last pair moves the game to the next round.
func Flip(game *entity.ColorMatchGame, index int, rnd pkg.Random) (FlipResult, error) {
	switch game.Status {
	case entity.StatusWaiting:
		return FlipResult{}, apperror.ErrGameIsNotStarted
	case entity.StatusFinished:
		return FlipResult{}, apperror.ErrGameFinished
	case entity.StatusMemorize:
		return FlipResult{}, apperror.ErrLocked
	}

	if index < 0 || index >= len(game.Cards) {
		return FlipResult{}, apperror.ErrOutOfBounds
	}

	if game.Cards[index].FaceUp || game.Cards[index].Matched {
		return FlipResult{}, apperror.ErrCardRevealed
	}

	if len(game.Pending) >= 2 {
		return FlipResult{}, apperror.ErrLocked
	}

	game.Cards[index].FaceUp = true
	game.Pending = append(game.Pending, index)

	result := FlipResult{Index: index}
	if len(game.Pending) < 2 {
		return result, nil
	}

	first, second := game.Pending[0], game.Pending[1]
	game.Pending = nil

	result.Resolved = true
	result.Pair = [2]int{first, second}

	if game.Cards[first].Color != game.Cards[second].Color {
		game.Cards[first].FaceUp = false
		game.Cards[second].FaceUp = false

		return result, nil
	}

	game.Cards[first].Matched = true
	game.Cards[second].Matched = true
	game.MatchedPairs++

	result.Matched = true
	result.Gained = pointsPerRound * game.Round
	game.Score += result.Gained

	if game.RemainingPairs() > 0 {
		return result, nil
	}

	result.RoundComplete = true

	if game.Round >= game.MaxRounds {
		game.Status = entity.StatusFinished
		game.FinalRound = game.Round
		result.Finished = true

		return result, nil
	}

	game.Round++
	deal(game, rnd)

	return result, nil
}

// PairsFor returns the number of pairs dealt in round.
func PairsFor(round int) int {
	return 1 << round
}

func deal(game *entity.ColorMatchGame, rnd pkg.Random) {
	game.TotalPairs = PairsFor(game.Round)
	game.MatchedPairs = 0
	game.Pending = nil
	game.Status = entity.StatusMemorize
	game.Deal++

	cards := make([]entity.Card, 0, game.TotalPairs*2)
	for i := range game.TotalPairs {
		color := Palette[i%len(Palette)]
		cards = append(cards,
			entity.Card{Color: color, FaceUp: true},
			entity.Card{Color: color, FaceUp: true},
		)
	}

	pkg.Shuffle(rnd, len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	game.Cards = cards
}
