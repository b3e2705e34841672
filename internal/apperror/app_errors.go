package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrOutOfRange        = errors.New("column is out of range")
	ErrColumnFull        = errors.New("column is full")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrUnknownPreset     = errors.New("unknown board preset")
)
