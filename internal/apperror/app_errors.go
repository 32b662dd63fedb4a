package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFound      = errors.New("game not found")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrNoAvailableMoves  = errors.New("no available moves")
)
