package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameIsFull       = errors.New("game already has two players")
	ErrInvalidMove      = errors.New("invalid move")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell position")
	ErrInvalidMarker    = errors.New("marker must be a single letter")
	ErrMarkerTaken      = errors.New("marker is already taken")
	ErrEmptyName        = errors.New("player name is empty")
	ErrInputClosed      = errors.New("input is closed")
)
