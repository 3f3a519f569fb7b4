package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every BoundsError via errors.Is.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// BoundsError reports an access outside the map grid.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) outside %dx%d map", e.X, e.Y, e.Width, e.Height)
}

// Is lets errors.Is(err, ErrOutOfBounds) succeed.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
