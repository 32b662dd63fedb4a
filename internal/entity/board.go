package entity

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

const CenterCell = 4

var (
	CornerCells = [4]int{0, 2, 6, 8}
	EdgeCells   = [4]int{1, 3, 5, 7}
)

// WinLine is a triple of cell indices that wins when held by one mark.
type WinLine [3]int

var WinLines = [8]WinLine{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is a 3x3 grid in row-major order.
type Board [BoardSize]Mark

func (that Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

// Place sets cell to mark. The cell must be empty; Place does not check it.
func (that *Board) Place(cell int, mark Mark) {
	that[cell] = mark
}

// Clear empties a cell, undoing Place.
func (that *Board) Clear(cell int) {
	that[cell] = EmptyCell
}

// HasWin reports whether any win line is fully held by mark.
func (that Board) HasWin(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	for _, line := range WinLines {
		if that[line[0]] == mark && that[line[1]] == mark && that[line[2]] == mark {
			return true
		}
	}

	return false
}

// WinningLines returns every line fully held by a single mark.
func (that Board) WinningLines() []WinLine {
	var lines []WinLine

	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			lines = append(lines, line)
		}
	}

	return lines
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// IsDraw reports a full board on which neither mark has won.
func (that Board) IsDraw() bool {
	return that.IsFull() && !that.HasWin(PlayerX) && !that.HasWin(PlayerO)
}

// EmptyCells returns the empty cell indices in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)

	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns how many cells hold mark.
func (that Board) Count(mark Mark) int {
	n := 0

	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}
