package entity

import "time"

// Result is a finished game kept in the score history.
type Result struct {
	ID         int64     `json:"id"`
	Game       string    `json:"game"`
	SessionID  string    `json:"session_id"`
	Score      int       `json:"score"`
	FinishedAt time.Time `json:"finished_at"`
}
