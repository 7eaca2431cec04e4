package apperror

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid board configuration")
	ErrOutOfBounds     = errors.New("cell is out of bounds")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrNotYourTurn     = errors.New("it's not your turn")
)
