package entity

import (
	"time"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// PlayerTie is stored as the winner of a drawn game.
	PlayerTie = "-"

	// NoMove marks the absence of a computer move.
	NoMove = -1
)

type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Win
	Draw
)

func (that OutcomeKind) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Outcome is the state of a board: still playing, won by Winner, or drawn.
type Outcome struct {
	Kind   OutcomeKind
	Winner Mark
}

// Game is one human-versus-computer session.
type Game struct {
	ID               string     `json:"id"`
	Board            Board      `json:"board"`
	Difficulty       Difficulty `json:"difficulty"`
	PlayerMark       Mark       `json:"player_mark"`
	ComputerMark     Mark       `json:"computer_mark"`
	Turn             Mark       `json:"turn"`
	Status           string     `json:"status"`
	Winner           string     `json:"winner"`
	WinningLine      []int      `json:"winning_line,omitempty"`
	LastComputerMove int        `json:"last_computer_move"`
	CreatedAt        time.Time  `json:"created_at"`
}

// NewGame - X always moves first, whichever side the human picked.
func NewGame(id string, difficulty Difficulty, playerMark Mark) *Game {
	return &Game{
		ID:               id,
		Board:            Board{},
		Difficulty:       difficulty,
		PlayerMark:       playerMark,
		ComputerMark:     playerMark.Opponent(),
		Turn:             PlayerX,
		Status:           StatusOngoing,
		LastComputerMove: NoMove,
		CreatedAt:        time.Now().UTC(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.Turn == that.ComputerMark
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// Reset - clears the board, keeping the ID, for a new round.
func (that *Game) Reset(difficulty Difficulty, playerMark Mark) {
	that.Board = Board{}
	that.Difficulty = difficulty
	that.PlayerMark = playerMark
	that.ComputerMark = playerMark.Opponent()
	that.Turn = PlayerX
	that.Status = StatusOngoing
	that.Winner = ""
	that.WinningLine = nil
	that.LastComputerMove = NoMove
}
