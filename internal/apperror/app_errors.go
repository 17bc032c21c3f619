package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")

	ErrNoCoordinate     = errors.New("no coordinate found")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrRowOutOfRange    = errors.New("row out of range")

	ErrStateNotFound = errors.New("game state not found")
)
