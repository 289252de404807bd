package entity

// StatusMemorize is the reveal phase at the start of every round.
const StatusMemorize = "memorize"

type Card struct {
	Color   string `json:"color"`
	FaceUp  bool   `json:"face_up"`
	Matched bool   `json:"matched"`
}

type ColorMatchGame struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Round        int    `json:"round"`
	MaxRounds    int    `json:"max_rounds"`
	Score        int    `json:"score"`
	TotalPairs   int    `json:"total_pairs"`
	MatchedPairs int    `json:"matched_pairs"`
	Cards        []Card `json:"cards"`
	Pending      []int  `json:"pending"`
	FinalRound   int    `json:"final_round"`
	// Deal counts every dealt board across restarts; hide timers carry it.
	Deal int `json:"deal"`
}

func (that *ColorMatchGame) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *ColorMatchGame) RemainingPairs() int {
	return that.TotalPairs - that.MatchedPairs
}
