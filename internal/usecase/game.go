package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type GameUseCase interface {
	StartGame(ctx context.Context, difficulty entity.Difficulty, playerMark entity.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	RestartGame(ctx context.Context, gameID string, difficulty entity.Difficulty, playerMark entity.Mark) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error
}

type gameService interface {
	CreateGame(ctx context.Context, difficulty entity.Difficulty, playerMark entity.Mark) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

type gameUseCase struct {
	logger *slog.Logger

	gameService gameService
	botService  botService

	defaultDifficulty entity.Difficulty
}

// NewGameUseCase - defaultDifficulty is used when a game is started without one.
func NewGameUseCase(logger *slog.Logger, gameService gameService, botService botService, defaultDifficulty entity.Difficulty) GameUseCase {
	return &gameUseCase{
		logger:            logger.With("component", "usecase"),
		gameService:       gameService,
		botService:        botService,
		defaultDifficulty: defaultDifficulty,
	}
}

func (that *gameUseCase) StartGame(ctx context.Context, difficulty entity.Difficulty, playerMark entity.Mark) (*entity.Game, error) {
	if difficulty == "" {
		difficulty = that.defaultDifficulty
	}

	if err := validateChoice(difficulty, playerMark); err != nil {
		return nil, err
	}

	game, err := that.gameService.CreateGame(ctx, difficulty, playerMark)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	if err = that.openRound(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game started",
		"game_id", game.ID,
		"difficulty", game.Difficulty,
		"player_mark", game.PlayerMark,
	)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human's cell, then the computer's reply unless the game ended.
func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}

	if err = tictactoe.MakeTurn(game, game.PlayerMark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsComputerTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// RestartGame - starts a new round in the same game. Empty arguments keep the previous choice.
func (that *gameUseCase) RestartGame(ctx context.Context, gameID string, difficulty entity.Difficulty, playerMark entity.Mark) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if difficulty == "" {
		difficulty = game.Difficulty
	}

	if playerMark == entity.EmptyCell {
		playerMark = game.PlayerMark
	}

	if err = validateChoice(difficulty, playerMark); err != nil {
		return nil, err
	}

	game.Reset(difficulty, playerMark)

	if err = that.openRound(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// EndGame - drops the session, a later lookup reports ErrGameNotFound.
func (that *gameUseCase) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.logger.Info("game ended", "game_id", gameID)

	return nil
}

// openRound - lets the computer open when it plays X and stores the game.
func (that *gameUseCase) openRound(ctx context.Context, game *entity.Game) error {
	if game.IsComputerTurn() {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to open: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func validateChoice(difficulty entity.Difficulty, playerMark entity.Mark) error {
	if !difficulty.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	if !playerMark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, playerMark)
	}

	return nil
}
