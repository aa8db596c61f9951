package app

import "errors"

// Recoverable per-trigger errors, reported to the requester only. A failed
// trigger never mutates room state.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrGameInProgress     = errors.New("game already in progress")
	ErrGameOver           = errors.New("game is over")
	ErrNotHost            = errors.New("only the host can do that")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrActionPending      = errors.New("previous action is still resolving")
	ErrInvalidName        = errors.New("name must not be empty")
	ErrInvalidCode        = errors.New("room code must not be empty")
	ErrUnknownParticipant = errors.New("participant not found")
)
