package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/bot"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger

	selector *bot.Selector
}

// NewBotService - rnd is shared by every game, only its draws are serialised.
func NewBotService(logger *slog.Logger, rnd bot.Random) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		selector: bot.NewSelector(bot.NewLockedRandom(rnd)),
	}
}

// MakeTurn - plays the computer's move on game. A full board finishes the game as a draw.
func (that *botService) MakeTurn(game *entity.Game) error {
	if !game.IsComputerTurn() {
		return apperror.ErrNotYourTurn
	}

	cell, err := that.selector.SelectMove(game.Board, game.Difficulty, game.ComputerMark, game.PlayerMark)

	if err != nil {
		if game.Board.IsFull() {
			game.Status = entity.StatusFinished
			game.Winner = entity.PlayerTie
			game.Turn = entity.EmptyCell

			return nil
		}

		return fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, game.ComputerMark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.LastComputerMove = cell

	that.logger.Debug("computer moved",
		"game_id", game.ID,
		"difficulty", game.Difficulty,
		"mark", game.ComputerMark,
		"cell", cell,
	)

	return nil
}
