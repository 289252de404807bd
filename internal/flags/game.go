package flags

import (
	"math"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

const (
	GameDuration    = 60 * time.Second
	DifficultyStep  = 12 * time.Second
	MaxDifficulty   = 5
	DefaultRate     = 1.5
	MinRate         = 0.5
	MaxRate         = 3.0
	basePoints      = 10
	streakBonusStep = 2
)

var keyActions = map[string]entity.FlagAction{
	"1": entity.ActionWhiteUp,
	"2": entity.ActionWhiteDown,
	"3": entity.ActionBlueUp,
	"4": entity.ActionBlueDown,
	"5": entity.ActionStand,
	"6": entity.ActionSit,
}

type AnswerResult struct {
	Action   entity.FlagAction `json:"action"`
	Expected entity.FlagAction `json:"expected"`
	Correct  bool              `json:"correct"`
	Gained   int               `json:"gained"`
}

// Caller issues commands from a catalog and judges the answers.
type Caller struct {
	catalog *Catalog
}

func NewCaller(catalog *Catalog) *Caller {
	return &Caller{catalog: catalog}
}

func NewGame(id string) *entity.FlagGame {
	return &entity.FlagGame{
		ID:         id,
		Status:     entity.StatusWaiting,
		Difficulty: 1,
		VoiceRate:  DefaultRate,
	}
}

// Start resets the round counters and issues the first command.
// Best streak and voice rate carry over.
func (that *Caller) Start(game *entity.FlagGame, now time.Time, rnd pkg.Random) {
	game.Status = entity.StatusOngoing
	game.Score = 0
	game.Streak = 0
	game.TotalCommands = 0
	game.CorrectCommands = 0
	game.Accuracy = 0
	game.Difficulty = 1
	game.StartedAt = now
	game.Deadline = now.Add(GameDuration)

	that.issue(game, rnd)
}

// Answer judges action against the current command and issues the next one.
func (that *Caller) Answer(game *entity.FlagGame, action entity.FlagAction, now time.Time, rnd pkg.Random) (AnswerResult, error) {
	if game.Status == entity.StatusWaiting {
		return AnswerResult{}, apperror.ErrGameIsNotStarted
	}

	Expire(game, now)

	if !game.IsOngoing() {
		return AnswerResult{}, apperror.ErrGameFinished
	}

	if !action.IsValid() {
		return AnswerResult{}, apperror.ErrUnknownAction
	}

	if game.Command == nil {
		return AnswerResult{}, apperror.ErrNoCommand
	}

	result := AnswerResult{Action: action, Expected: game.Command.Action}

	if action == game.Command.Action {
		result.Correct = true
		result.Gained = basePoints + game.Streak*streakBonusStep
		game.Score += result.Gained
		game.Streak++
		game.CorrectCommands++
		game.BestStreak = max(game.BestStreak, game.Streak)
	} else {
		game.Streak = 0
	}

	game.Difficulty = DifficultyAt(now.Sub(game.StartedAt))
	that.issue(game, rnd)

	return result, nil
}

// Stop finishes a running game and computes its accuracy.
func Stop(game *entity.FlagGame) error {
	switch game.Status {
	case entity.StatusWaiting:
		return apperror.ErrGameIsNotStarted
	case entity.StatusFinished:
		return apperror.ErrGameFinished
	}

	finish(game)

	return nil
}

// Expire finishes the game once the minute is over. It reports whether this call ended it.
func Expire(game *entity.FlagGame, now time.Time) bool {
	if !game.IsOngoing() || now.Before(game.Deadline) {
		return false
	}

	finish(game)

	return true
}

// SetRate stores the narrator speed, clamped to the supported range.
func SetRate(game *entity.FlagGame, rate float64) {
	if math.IsNaN(rate) {
		return
	}

	game.VoiceRate = min(MaxRate, max(MinRate, rate))
}

// DifficultyAt returns the difficulty reached after elapsed play time.
func DifficultyAt(elapsed time.Duration) int {
	if elapsed < 0 {
		return 1
	}

	return min(MaxDifficulty, int(elapsed/DifficultyStep)+1)
}

// Accuracy is the share of correct answers as a whole percentage, 0 when nothing was issued.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(correct) / float64(total) * 100))
}

// ActionFromKey maps the number keys 1..6 to flag actions.
func ActionFromKey(key string) (entity.FlagAction, bool) {
	action, ok := keyActions[key]
	return action, ok
}

func (that *Caller) issue(game *entity.FlagGame, rnd pkg.Random) {
	available := that.catalog.Available(game.Difficulty)
	command := available[rnd.Intn(len(available))]

	game.Command = &command
	game.TotalCommands++
}

func finish(game *entity.FlagGame) {
	game.Status = entity.StatusFinished
	game.Command = nil
	game.Accuracy = Accuracy(game.CorrectCommands, game.TotalCommands)
}
