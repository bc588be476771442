package apperror

import "errors"

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrGameFinished       = errors.New("game is already finished")
	ErrNoPlayers          = errors.New("game has no players")
	ErrNotEnoughPlayers   = errors.New("at least two players are required")
	ErrDuplicatePlayer    = errors.New("player name is already taken")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrNoActiveRound      = errors.New("no active round")
	ErrRoundAlreadyScored = errors.New("round is already scored")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrAlreadyAnswered    = errors.New("answer already submitted for this round")
)
