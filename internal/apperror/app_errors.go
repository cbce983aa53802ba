package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("cell is out of range")
	ErrInvalidMove  = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already finished")
	ErrInvalidInput = errors.New("invalid input")
)
