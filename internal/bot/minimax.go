package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// NoMove is returned when there is no empty cell to play.
const NoMove = entity.NoMove

const winScore = 10

// BestMoveByMinimax returns the game-theoretically best cell for me.
//
// Cells are tried in ascending order and only a strictly better score replaces
// the current best, so equal scores resolve to the lowest index. The board is
// searched in full, without pruning. NoMove is returned for a full board.
func BestMoveByMinimax(board entity.Board, me, opponent entity.Mark) int {
	bestScore := math.MinInt
	bestMove := NoMove

	for cell := range board {
		if !board.IsEmpty(cell) {
			continue
		}

		board.Place(cell, me)
		score := minimax(&board, 0, false, me, opponent)
		board.Clear(cell)

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	return bestMove
}

// minimax scores board from me's point of view. Wins are worth 10 - depth and
// losses depth - 10, so a quicker win and a slower loss score higher. Every
// placement is cleared before returning.
func minimax(board *entity.Board, depth int, maximizing bool, me, opponent entity.Mark) int {
	if board.HasWin(me) {
		return winScore - depth
	}

	if board.HasWin(opponent) {
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	mover, bestScore := opponent, math.MaxInt
	if maximizing {
		mover, bestScore = me, math.MinInt
	}

	for cell := range board {
		if !board.IsEmpty(cell) {
			continue
		}

		board.Place(cell, mover)
		score := minimax(board, depth+1, !maximizing, me, opponent)
		board.Clear(cell)

		if maximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}
