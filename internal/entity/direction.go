package entity

import (
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDirection, s)
	}
}

func (that Direction) IsValid() bool {
	_, err := ParseDirection(string(that))
	return err == nil
}
