package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/arcade-backend/internal/colormatch"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/flags"
	"github.com/rocketscienceinc/arcade-backend/internal/oddcolor"
	"github.com/rocketscienceinc/arcade-backend/internal/omok"
	"github.com/rocketscienceinc/arcade-backend/internal/tiles"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// MovePayload picks a direction by name, by key or by pointer displacement, in that order.
type MovePayload struct {
	Direction entity.Direction `json:"direction,omitempty"`
	Key       string           `json:"key,omitempty"`
	DX        float64          `json:"dx,omitempty"`
	DY        float64          `json:"dy,omitempty"`
}

type CellPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type IndexPayload struct {
	Index int `json:"index"`
}

// AnswerPayload takes an action name or a number key 1..6.
type AnswerPayload struct {
	Action entity.FlagAction `json:"action,omitempty"`
	Key    string            `json:"key,omitempty"`
}

type RatePayload struct {
	Rate float64 `json:"rate"`
}

type TopPayload struct {
	Game  string `json:"game"`
	Limit int    `json:"limit"`
}

type TilesResponse struct {
	Game    *entity.TileGame `json:"game"`
	Outcome *tiles.Outcome   `json:"outcome,omitempty"`
}

type OmokResponse struct {
	Game      *entity.OmokGame `json:"game"`
	Placement *omok.Placement  `json:"placement,omitempty"`
}

type OddColorResponse struct {
	Game      *entity.OddColorGame `json:"game"`
	Pick      *oddcolor.PickResult `json:"pick,omitempty"`
	Remaining int                  `json:"remaining"`
}

type ColorMatchResponse struct {
	Game *entity.ColorMatchGame `json:"game"`
	Flip *colormatch.FlipResult `json:"flip,omitempty"`
}

type FlagsResponse struct {
	Game      *entity.FlagGame    `json:"game"`
	Answer    *flags.AnswerResult `json:"answer,omitempty"`
	Remaining int                 `json:"remaining"`
}

type ResultsResponse struct {
	Game    string          `json:"game"`
	Results []entity.Result `json:"results"`
}
