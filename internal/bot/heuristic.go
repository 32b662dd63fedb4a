package bot

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// WinningMove finds the lowest empty cell that completes a line for mark.
func WinningMove(board entity.Board, mark entity.Mark) (int, bool) {
	for cell := range board {
		if !board.IsEmpty(cell) {
			continue
		}

		board.Place(cell, mark)
		won := board.HasWin(mark)
		board.Clear(cell)

		if won {
			return cell, true
		}
	}

	return NoMove, false
}

// HeuristicMove picks a cell for me, first match wins:
//  1. a cell that wins now;
//  2. a cell that blocks the opponent's win;
//  3. on hard, the minimax move;
//  4. the centre;
//  5. a corner that wins when taken, else a random empty corner;
//  6. a random empty edge;
//  7. any random empty cell.
func HeuristicMove(board entity.Board, difficulty entity.Difficulty, me, opponent entity.Mark, rnd Random) int {
	if cell, ok := WinningMove(board, me); ok {
		return cell
	}

	if cell, ok := WinningMove(board, opponent); ok {
		return cell
	}

	if difficulty == entity.DifficultyHard {
		return BestMoveByMinimax(board, me, opponent)
	}

	if board.IsEmpty(entity.CenterCell) {
		return entity.CenterCell
	}

	if corners := emptyOf(board, entity.CornerCells[:]); len(corners) > 0 {
		for _, corner := range corners {
			board.Place(corner, me)
			won := board.HasWin(me)
			board.Clear(corner)

			if won {
				return corner
			}
		}

		return randomCell(corners, rnd)
	}

	if edges := emptyOf(board, entity.EdgeCells[:]); len(edges) > 0 {
		return randomCell(edges, rnd)
	}

	return randomCell(board.EmptyCells(), rnd)
}
