package bot

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// mediumSmartChance is the share of medium moves that use the heuristic.
const mediumSmartChance = 0.6

// Selector chooses the computer's move for a difficulty.
// A Selector is safe for concurrent use when its Random is, see NewLockedRandom.
type Selector struct {
	rnd Random
}

func NewSelector(rnd Random) *Selector {
	return &Selector{rnd: rnd}
}

// SelectComputerMove - one-shot form of Selector.SelectMove.
func SelectComputerMove(board entity.Board, difficulty entity.Difficulty, computerMark, playerMark entity.Mark, rnd Random) (int, error) {
	return NewSelector(rnd).SelectMove(board, difficulty, computerMark, playerMark)
}

// SelectMove returns the cell the computer plays.
//
// Easy plays at random. Medium uses the heuristic on 60% of moves and plays
// at random otherwise. Hard always uses the heuristic, which goes through
// minimax. A chosen cell that is not playable is replaced by a random empty
// cell; ErrNoAvailableMoves means the board is full.
func (that *Selector) SelectMove(board entity.Board, difficulty entity.Difficulty, computerMark, playerMark entity.Mark) (int, error) {
	if !computerMark.IsPlayer() || playerMark != computerMark.Opponent() {
		return NoMove, fmt.Errorf("%w: computer %q, player %q", apperror.ErrInvalidMark, computerMark, playerMark)
	}

	var move int

	switch difficulty {
	case entity.DifficultyEasy:
		move = randomCell(board.EmptyCells(), that.rnd)
	case entity.DifficultyMedium:
		if that.rnd.Float64() < mediumSmartChance {
			move = HeuristicMove(board, difficulty, computerMark, playerMark, that.rnd)
		} else {
			move = randomCell(board.EmptyCells(), that.rnd)
		}
	case entity.DifficultyHard:
		move = HeuristicMove(board, difficulty, computerMark, playerMark, that.rnd)
	default:
		return NoMove, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	return playable(board, move, that.rnd)
}

// playable - keeps move when it is an empty cell, else falls back to a random empty cell.
func playable(board entity.Board, move int, rnd Random) (int, error) {
	if move >= 0 && move < entity.BoardSize && board.IsEmpty(move) {
		return move, nil
	}

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return NoMove, apperror.ErrNoAvailableMoves
	}

	return randomCell(empty, rnd), nil
}
