package entity

import "time"

type FlagAction string

const (
	ActionWhiteUp   FlagAction = "white-up"
	ActionWhiteDown FlagAction = "white-down"
	ActionBlueUp    FlagAction = "blue-up"
	ActionBlueDown  FlagAction = "blue-down"
	ActionStand     FlagAction = "stand"
	ActionSit       FlagAction = "sit"
)

func (that FlagAction) IsValid() bool {
	switch that {
	case ActionWhiteUp, ActionWhiteDown, ActionBlueUp, ActionBlueDown, ActionStand, ActionSit:
		return true
	default:
		return false
	}
}

// FlagCommand is one spoken instruction and the action it expects.
type FlagCommand struct {
	Action FlagAction `json:"action" yaml:"action"`
	Text   string     `json:"text" yaml:"text"`
}

type FlagGame struct {
	ID              string       `json:"id"`
	Status          string       `json:"status"`
	Score           int          `json:"score"`
	Streak          int          `json:"streak"`
	BestStreak      int          `json:"best_streak"`
	TotalCommands   int          `json:"total_commands"`
	CorrectCommands int          `json:"correct_commands"`
	Difficulty      int          `json:"difficulty"`
	Command         *FlagCommand `json:"command,omitempty"`
	VoiceRate       float64      `json:"voice_rate"`
	Accuracy        int          `json:"accuracy"`
	StartedAt       time.Time    `json:"started_at"`
	Deadline        time.Time    `json:"deadline"`
}

func (that *FlagGame) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *FlagGame) Remaining(now time.Time) int {
	return remainingSeconds(that.Deadline, now)
}
