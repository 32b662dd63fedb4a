package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func NewBoard() entity.Board {
	return entity.Board{}
}

// ApplyMove - returns a copy of board with mark placed on cell.
// On error the board is returned unchanged.
func ApplyMove(board entity.Board, cell int, mark entity.Mark) (entity.Board, error) {
	if err := validateCell(board, cell); err != nil {
		return board, err
	}

	if !mark.IsPlayer() {
		return board, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	board.Place(cell, mark)

	return board, nil
}

// CheckOutcome - wins are checked before the draw, a full board with a line is a win.
func CheckOutcome(board entity.Board) entity.Outcome {
	for _, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		if board.HasWin(mark) {
			return entity.Outcome{Kind: entity.Win, Winner: mark}
		}
	}

	if board.IsDraw() {
		return entity.Outcome{Kind: entity.Draw}
	}

	return entity.Outcome{Kind: entity.InProgress}
}

// MakeTurn - plays mark on cell for a game session and updates its status.
func MakeTurn(gameInstance *entity.Game, mark entity.Mark, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if gameInstance.Turn != mark {
		return fmt.Errorf("invalid turn: %w", apperror.ErrNotYourTurn)
	}

	board, err := ApplyMove(gameInstance.Board, cell, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board = board
	updateGameStatus(gameInstance, mark)

	return nil
}

// validateCell - checks the cell index and that the cell is free.
func validateCell(board entity.Board, cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !board.IsEmpty(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mark entity.Mark) {
	switch outcome := CheckOutcome(gameInstance.Board); outcome.Kind {
	case entity.Win:
		gameInstance.Winner = string(outcome.Winner)
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.EmptyCell
		gameInstance.WinningLine = highlightCells(gameInstance.Board)
	case entity.Draw:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.EmptyCell
	default:
		gameInstance.Turn = mark.Opponent()
	}
}

func highlightCells(board entity.Board) []int {
	var cells []int

	for _, line := range board.WinningLines() {
		cells = append(cells, line[:]...)
	}

	return cells
}
