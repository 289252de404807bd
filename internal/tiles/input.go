package tiles

import (
	"math"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

var keyDirections = map[string]entity.Direction{
	"ArrowUp":    entity.DirectionUp,
	"w":          entity.DirectionUp,
	"W":          entity.DirectionUp,
	"ArrowDown":  entity.DirectionDown,
	"s":          entity.DirectionDown,
	"S":          entity.DirectionDown,
	"ArrowLeft":  entity.DirectionLeft,
	"a":          entity.DirectionLeft,
	"A":          entity.DirectionLeft,
	"ArrowRight": entity.DirectionRight,
	"d":          entity.DirectionRight,
	"D":          entity.DirectionRight,
}

func DirectionFromKey(key string) (entity.Direction, bool) {
	dir, ok := keyDirections[key]
	return dir, ok
}

// DirectionFromDelta maps a drag or swipe displacement in screen coordinates
// (y grows downwards) to a direction. The dominant axis wins and a tie goes to
// the vertical axis.
func DirectionFromDelta(dx, dy float64) (entity.Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)

	switch {
	case dx < 0 && ax > ay:
		return entity.DirectionLeft, true
	case dx > 0 && ax > ay:
		return entity.DirectionRight, true
	case dy > 0 && ax <= ay:
		return entity.DirectionDown, true
	case dy < 0 && ax <= ay:
		return entity.DirectionUp, true
	default:
		return "", false
	}
}
