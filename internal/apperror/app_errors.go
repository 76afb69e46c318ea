package apperror

import "errors"

// ErrInvalidMove is the only error kind Game.Play returns. The wrapped reason
// says which rule the move broke.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrBoardDecided      = errors.New("board is already decided")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrBoardNotAvailable = errors.New("board is not available for this turn")
)
