package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var errGameIDRequired = errors.New("game_id is required")

func (that *Server) handleNewGame(ctx context.Context, payload *Payload) (*Payload, error) {
	difficulty, mark, err := parseChoice(payload)
	if err != nil {
		return nil, err
	}

	return gameReply(that.gameUseCase.StartGame(ctx, difficulty, mark))
}

func (that *Server) handleGetGame(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return gameReply(that.gameUseCase.GetGame(ctx, payload.GameID))
}

func (that *Server) handleGameTurn(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if payload.Cell == nil {
		return nil, fmt.Errorf("%w: cell is required", apperror.ErrInvalidCell)
	}

	return gameReply(that.gameUseCase.MakeTurn(ctx, payload.GameID, *payload.Cell))
}

func (that *Server) handleRestartGame(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	difficulty, mark, err := parseChoice(payload)
	if err != nil {
		return nil, err
	}

	return gameReply(that.gameUseCase.RestartGame(ctx, payload.GameID, difficulty, mark))
}

// handleDeleteGame - answers with the id of the removed game.
func (that *Server) handleDeleteGame(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if err := that.gameUseCase.EndGame(ctx, payload.GameID); err != nil {
		return nil, err
	}

	return &Payload{GameID: payload.GameID}, nil
}

func gameReply(game *entity.Game, err error) (*Payload, error) {
	if err != nil {
		return nil, err
	}

	return &Payload{Game: game}, nil
}

// parseChoice - empty fields stay empty so the use case can apply its defaults.
func parseChoice(payload *Payload) (entity.Difficulty, entity.Mark, error) {
	var (
		difficulty entity.Difficulty
		mark       entity.Mark
		err        error
	)

	if payload.Difficulty != "" {
		if difficulty, err = entity.ParseDifficulty(payload.Difficulty); err != nil {
			return "", entity.EmptyCell, err
		}
	}

	if payload.Mark != "" {
		if mark, err = entity.ParseMark(payload.Mark); err != nil {
			return "", entity.EmptyCell, err
		}
	}

	return difficulty, mark, nil
}
