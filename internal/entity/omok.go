package entity

const (
	BoardSize = 15
	WinLength = 5
)

type Stone string

const (
	StoneEmpty Stone = ""
	StoneBlack Stone = "black"
	StoneWhite Stone = "white"
)

func (that Stone) IsPlayer() bool {
	return that == StoneBlack || that == StoneWhite
}

// Opponent returns the other color; empty stays empty.
func (that Stone) Opponent() Stone {
	switch that {
	case StoneBlack:
		return StoneWhite
	case StoneWhite:
		return StoneBlack
	default:
		return StoneEmpty
	}
}

type Board [BoardSize][BoardSize]Stone

type OmokGame struct {
	ID          string `json:"id"`
	Board       Board  `json:"board"`
	Turn        Stone  `json:"turn"`
	Winner      Stone  `json:"winner"`
	Draw        bool   `json:"draw"`
	Status      string `json:"status"`
	WinningLine []Cell `json:"winning_line,omitempty"`
	Moves       int    `json:"moves"`
}

func (that *OmokGame) IsFinished() bool {
	return that.Status == StatusFinished
}
