package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Human playing X moves first", func(t *testing.T) {
		// Given: a new game where the human picked X
		game := NewGame("123", DifficultyHard, PlayerX)

		// Then: the computer plays O and it is X's turn
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, Board{}, game.Board)
		assert.Equal(t, PlayerO, game.ComputerMark)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, NoMove, game.LastComputerMove)
		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Human playing O waits for the computer", func(t *testing.T) {
		// Given: a new game where the human picked O
		game := NewGame("123", DifficultyEasy, PlayerO)

		// Then: the computer is X and moves first
		assert.Equal(t, PlayerX, game.ComputerMark)
		assert.True(t, game.IsComputerTurn())
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it is finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsDraw requires the tie winner", func(t *testing.T) {
		// Given: a finished game with a tie
		game := &Game{Status: StatusFinished, Winner: PlayerTie}

		// Then: it is a draw
		assert.True(t, game.IsDraw())

		// When: the winner is X instead
		game.Winner = string(PlayerX)

		// Then: it is not a draw
		assert.False(t, game.IsDraw())
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := NewGame("123", DifficultyEasy, PlayerX)
	game.Board = Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO}
	game.Status = StatusFinished
	game.Winner = string(PlayerX)
	game.WinningLine = []int{0, 1, 2}
	game.LastComputerMove = 4

	// When: resetting with new choices
	game.Reset(DifficultyHard, PlayerO)

	// Then: the round starts over with the same ID
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, DifficultyHard, game.Difficulty)
	assert.Equal(t, PlayerO, game.PlayerMark)
	assert.Equal(t, PlayerX, game.ComputerMark)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
	assert.Nil(t, game.WinningLine)
	assert.Equal(t, NoMove, game.LastComputerMove)
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		for input, want := range map[string]Difficulty{
			"easy":    DifficultyEasy,
			"Medium":  DifficultyMedium,
			" HARD ":  DifficultyHard,
			"hard":    DifficultyHard,
			"medium ": DifficultyMedium,
		} {
			got, err := ParseDifficulty(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
			assert.True(t, got.IsValid())
		}
	})

	t.Run("Unknown value", func(t *testing.T) {
		// When: parsing a free-form string
		_, err := ParseDifficulty("impossible")

		// Then: ErrUnknownDifficulty is returned
		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
		assert.False(t, Difficulty("impossible").IsValid())
	})
}

func TestParseMark(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		mark, err := ParseMark("x")
		require.NoError(t, err)
		assert.Equal(t, PlayerX, mark)

		mark, err = ParseMark("O")
		require.NoError(t, err)
		assert.Equal(t, PlayerO, mark)
	})

	t.Run("Empty and unknown values", func(t *testing.T) {
		_, err := ParseMark("")
		require.ErrorIs(t, err, apperror.ErrInvalidMark)

		_, err = ParseMark("Z")
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}
