package entity

const (
	GridSize    = 4
	WinningTile = 2048
)

// StatusWon means 2048 was just reached and the game waits for "keep playing".
const StatusWon = "won"

// Grid is the 2048 board; 0 marks an empty cell.
type Grid [GridSize][GridSize]int

// Tile is a value placed at a grid position.
type Tile struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

type TileGame struct {
	ID        string `json:"id"`
	Grid      Grid   `json:"grid"`
	Score     int    `json:"score"`
	BestScore int    `json:"best_score"`
	Won       bool   `json:"won"`
	Status    string `json:"status"`
	Moves     int    `json:"moves"`
}

func (that *TileGame) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *TileGame) IsWon() bool {
	return that.Status == StatusWon
}

func (that *TileGame) IsOngoing() bool {
	return that.Status == StatusOngoing
}
