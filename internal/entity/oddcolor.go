package entity

import (
	"fmt"
	"time"
)

type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (that Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", that.R, that.G, that.B)
}

type OddColorGame struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	Level     int       `json:"level"`
	Streak    int       `json:"streak"`
	GridSize  int       `json:"grid_size"`
	BaseColor Color     `json:"base_color"`
	OddColor  Color     `json:"odd_color"`
	OddIndex  int       `json:"odd_index"`
	Grids     int       `json:"grids"`
	StartedAt time.Time `json:"started_at"`
	Deadline  time.Time `json:"deadline"`
}

func (that *OddColorGame) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Remaining returns the whole seconds left on the clock at now.
func (that *OddColorGame) Remaining(now time.Time) int {
	return remainingSeconds(that.Deadline, now)
}

func remainingSeconds(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}

	return int((left + time.Second - 1) / time.Second)
}
