package entity

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game kinds, used as storage prefixes and in the score history.
const (
	GameTiles      = "2048"
	GameOmok       = "omok"
	GameOddColor   = "oddcolor"
	GameColorMatch = "colormatch"
	GameFlags      = "flags"
)

// Cell addresses a square on a board or grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
