package game

import "github.com/pkg/errors"

// Errors returned by board and game-state operations. They are wrapped with
// context, so match them with errors.Is.
var (
	ErrOutOfBounds          = errors.New("out of bounds")
	ErrIllegalMove          = errors.New("illegal move")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrGameOver             = errors.New("game is over - no moves allowed")
)
