package app

import "errors"

var (
	ErrNotYourTurn           = errors.New("not your turn")
	ErrInvalidPhase          = errors.New("action not allowed in this phase")
	ErrInvalidPlacement      = errors.New("invalid placement")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrUnknownAction         = errors.New("unknown action type")
	ErrPlayerNotFound        = errors.New("player not found")
	ErrTargetNotFound        = errors.New("target not found")
	ErrDeckExhausted         = errors.New("development card deck is empty")
	ErrCardNotHeld           = errors.New("development card not held")
	ErrBankEmpty             = errors.New("bank cannot supply the requested resources")
	ErrBadTrade              = errors.New("invalid trade")
	ErrAlreadyRolled         = errors.New("dice already rolled this turn")
	ErrMustRoll              = errors.New("dice must be rolled first")
	ErrTooFewPlayers         = errors.New("not enough players to start")
	ErrTooManyPlayers        = errors.New("too many players")
)
