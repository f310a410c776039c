package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrCellNotRevealable    = errors.New("cell is not revealable")
	ErrCellNotFlaggable     = errors.New("cell is not flaggable")
	ErrAlreadyFlagged       = errors.New("cell is already flagged")
	ErrNotFlagged           = errors.New("cell is not flagged")
	ErrGameOver             = errors.New("game is already over")
)

// MoveError is returned by rejected reveal, flag and unflag operations. The
// board is left unchanged whenever one is returned.
type MoveError struct {
	Op         string
	Coordinate Coordinate
	Err        error
}

// [MoveError] implements [error]
func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Coordinate, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func moveError(op string, c Coordinate, err error) error {
	return &MoveError{Op: op, Coordinate: c, Err: err}
}
