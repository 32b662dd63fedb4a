package bot

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Easy(t *testing.T) {
	t.Run("Only one spot left", func(t *testing.T) {
		// Given: a single empty cell
		board := entity.Board{x, o, x, o, x, o, e, x, o}

		// When: easy picks
		cell, err := NewSelector(NewRandom(1)).SelectMove(board, entity.DifficultyEasy, o, x)

		// Then: the only spot
		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Random moves are always empty cells", func(t *testing.T) {
		// Given: a partly filled board
		board := entity.Board{x, e, e, e, o, e, e, e, x}
		selector := NewSelector(NewRandom(3))

		for range 100 {
			// When: easy picks
			cell, err := selector.SelectMove(board, entity.DifficultyEasy, o, x)

			// Then: an empty cell
			require.NoError(t, err)
			assert.True(t, board.IsEmpty(cell), "cell %d", cell)
		}
	})

	t.Run("Easy ignores an open win", func(t *testing.T) {
		// Given: O can win at 2, the source points at the last empty cell
		board := entity.Board{o, o, e, x, x, e, e, e, e}
		rnd := &scriptedRandom{ints: []int{4}}

		// When: easy picks
		cell, err := SelectComputerMove(board, entity.DifficultyEasy, o, x, rnd)

		// Then: the fifth empty cell, 8
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})
}

func TestSelector_Medium(t *testing.T) {
	t.Run("Heuristic below the threshold", func(t *testing.T) {
		// Given: X threatens the top row and the coin lands under 0.6
		board := entity.Board{x, x, e, e, e, e, e, e, e}
		rnd := &scriptedRandom{floats: []float64{0.59}, ints: []int{6}}

		// When: medium picks
		cell, err := SelectComputerMove(board, entity.DifficultyMedium, o, x, rnd)

		// Then: it blocks
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Random at or above the threshold", func(t *testing.T) {
		// Given: the same board and the coin lands on 0.6
		board := entity.Board{x, x, e, e, e, e, e, e, e}
		rnd := &scriptedRandom{floats: []float64{0.6}, ints: []int{6}}

		// When: medium picks
		cell, err := SelectComputerMove(board, entity.DifficultyMedium, o, x, rnd)

		// Then: the seventh empty cell, 8
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Never reaches minimax", func(t *testing.T) {
		// Given: an empty board and the heuristic branch
		rnd := &scriptedRandom{floats: []float64{0.1}}

		// When: medium picks for X
		cell, err := SelectComputerMove(entity.Board{}, entity.DifficultyMedium, x, o, rnd)

		// Then: the centre, not the minimax cell 0
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})
}

func TestSelector_Hard(t *testing.T) {
	t.Run("Takes a single win", func(t *testing.T) {
		// Given: X can win at 2
		board := entity.Board{x, x, e, o, o, e, e, e, e}

		// When: hard picks for X
		cell, err := SelectComputerMove(board, entity.DifficultyHard, x, o, &scriptedRandom{})

		// Then: 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks a single threat", func(t *testing.T) {
		// Given: O threatens the top row
		board := entity.Board{o, o, e, e, x, e, e, e, e}

		// When: hard picks for X
		cell, err := SelectComputerMove(board, entity.DifficultyHard, x, o, &scriptedRandom{})

		// Then: it blocks at 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Opens on the lowest cell", func(t *testing.T) {
		cell, err := SelectComputerMove(entity.Board{}, entity.DifficultyHard, x, o, &scriptedRandom{})

		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})
}

func TestSelector_SafetyNet(t *testing.T) {
	t.Run("Full board reports no available moves", func(t *testing.T) {
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		for _, difficulty := range []entity.Difficulty{entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard} {
			cell, err := SelectComputerMove(board, difficulty, x, o, NewRandom(1))

			require.ErrorIs(t, err, apperror.ErrNoAvailableMoves, difficulty)
			assert.Equal(t, NoMove, cell)
		}
	})

	t.Run("Unplayable cell is replaced by a random empty cell", func(t *testing.T) {
		// Given: a board whose empty cells are 2, 3, 5, 6, 7, 8
		board := entity.Board{x, o, e, e, x, e, e, e, e}

		for _, move := range []int{4, 0, 9, NoMove} {
			// When: the chosen cell is taken or off the board
			cell, err := playable(board, move, &scriptedRandom{ints: []int{2}})

			// Then: the third empty cell is played instead
			require.NoError(t, err, move)
			assert.Equal(t, 5, cell, move)
		}
	})

	t.Run("Playable cell is kept without drawing", func(t *testing.T) {
		rnd := &scriptedRandom{ints: []int{2}}

		cell, err := playable(entity.Board{x, o}, 3, rnd)

		require.NoError(t, err)
		assert.Equal(t, 3, cell)
		assert.Equal(t, []int{2}, rnd.ints)
	})

	t.Run("Unplayable cell on a full board", func(t *testing.T) {
		cell, err := playable(entity.Board{o, x, o, o, x, x, x, o, x}, 4, NewRandom(1))

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		assert.Equal(t, NoMove, cell)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		_, err := SelectComputerMove(entity.Board{}, entity.Difficulty("impossible"), x, o, NewRandom(1))

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})

	t.Run("Marks must be opposite players", func(t *testing.T) {
		_, err := SelectComputerMove(entity.Board{}, entity.DifficultyEasy, x, x, NewRandom(1))
		require.ErrorIs(t, err, apperror.ErrInvalidMark)

		_, err = SelectComputerMove(entity.Board{}, entity.DifficultyEasy, e, x, NewRandom(1))
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestNewRandom_Deterministic(t *testing.T) {
	// Given: two selectors with the same seed
	first := NewSelector(NewRandom(42))
	second := NewSelector(NewRandom(42))

	for range 20 {
		// When: both pick an easy move on the empty board
		a, err := first.SelectMove(entity.Board{}, entity.DifficultyEasy, x, o)
		require.NoError(t, err)
		b, err := second.SelectMove(entity.Board{}, entity.DifficultyEasy, x, o)
		require.NoError(t, err)

		// Then: the same cell
		assert.Equal(t, a, b)
	}
}

func TestHardVersusHard_Draws(t *testing.T) {
	// Given: two hard players on an empty board
	selector := NewSelector(NewRandom(1))
	board := tictactoe.NewBoard()
	turn := x

	// When: they play to the end
	for tictactoe.CheckOutcome(board).Kind == entity.InProgress {
		cell, err := selector.SelectMove(board, entity.DifficultyHard, turn, turn.Opponent())
		require.NoError(t, err)

		board, err = tictactoe.ApplyMove(board, cell, turn)
		require.NoError(t, err)

		turn = turn.Opponent()
	}

	// Then: a draw
	assert.Equal(t, entity.Outcome{Kind: entity.Draw}, tictactoe.CheckOutcome(board))
}

func TestHard_CentreThenCorners(t *testing.T) {
	// Given: the human is X and prefers 4, then 0, then 8
	selector := NewSelector(NewRandom(1))
	board := tictactoe.NewBoard()
	preferred := []int{4, 0, 8}

	nextHumanCell := func() int {
		for _, cell := range preferred {
			if board.IsEmpty(cell) {
				return cell
			}
		}

		return board.EmptyCells()[0]
	}

	var computerMoves []int

	// When: the game is played out
	for {
		var err error

		board, err = tictactoe.ApplyMove(board, nextHumanCell(), x)
		require.NoError(t, err)
		if tictactoe.CheckOutcome(board).Kind != entity.InProgress {
			break
		}

		cell, err := selector.SelectMove(board, entity.DifficultyHard, o, x)
		require.NoError(t, err)
		computerMoves = append(computerMoves, cell)

		board, err = tictactoe.ApplyMove(board, cell, o)
		require.NoError(t, err)
		if tictactoe.CheckOutcome(board).Kind != entity.InProgress {
			break
		}
	}

	// Then: the first reply is a corner and X never wins
	require.NotEmpty(t, computerMoves)
	assert.Contains(t, entity.CornerCells[:], computerMoves[0])
	assert.NotEqual(t, x, tictactoe.CheckOutcome(board).Winner)
}

func TestHard_NeverLoses(t *testing.T) {
	selector := NewSelector(NewRandom(1))

	t.Run("Computer plays O", func(t *testing.T) {
		assertNeverLoses(t, selector, tictactoe.NewBoard(), x, o)
	})

	t.Run("Computer plays X", func(t *testing.T) {
		assertNeverLoses(t, selector, tictactoe.NewBoard(), x, x)
	})
}

// assertNeverLoses tries every human reply against the hard selector.
func assertNeverLoses(t *testing.T, selector *Selector, board entity.Board, turn, computer entity.Mark) {
	t.Helper()

	human := computer.Opponent()

	if outcome := tictactoe.CheckOutcome(board); outcome.Kind != entity.InProgress {
		if outcome.Winner == human {
			t.Fatalf("hard computer %s lost on board %v", computer, board)
		}

		return
	}

	if turn == computer {
		cell, err := selector.SelectMove(board, entity.DifficultyHard, computer, human)
		require.NoError(t, err)

		next, err := tictactoe.ApplyMove(board, cell, computer)
		require.NoError(t, err)

		assertNeverLoses(t, selector, next, human, computer)

		return
	}

	for _, cell := range board.EmptyCells() {
		next, err := tictactoe.ApplyMove(board, cell, human)
		require.NoError(t, err)

		assertNeverLoses(t, selector, next, computer, computer)
	}
}
