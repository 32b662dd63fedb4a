package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var errBadRequestBody = errors.New("bad request body")

type gameUseCase interface {
	StartGame(ctx context.Context, difficulty entity.Difficulty, playerMark entity.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	RestartGame(ctx context.Context, gameID string, difficulty entity.Difficulty, playerMark entity.Mark) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error
}

type GameHandler interface {
	StartGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	RestartGame(w http.ResponseWriter, r *http.Request)
	EndGame(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func NewGameHandler(logger *slog.Logger, gameUseCase gameUseCase) GameHandler {
	return &gameHandler{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

type choiceRequest struct {
	Difficulty string `json:"difficulty"`
	Mark       string `json:"mark"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *gameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	difficulty, mark, err := decodeChoice(r)
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.gameUseCase.StartGame(r.Context(), difficulty, mark)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequestBody, err))
		return
	}

	if req.Cell == nil {
		that.writeError(w, fmt.Errorf("%w: cell is required", apperror.ErrInvalidCell))
		return
	}

	game, err := that.gameUseCase.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) RestartGame(w http.ResponseWriter, r *http.Request) {
	difficulty, mark, err := decodeChoice(r)
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.gameUseCase.RestartGame(r.Context(), chi.URLParam(r, "id"), difficulty, mark)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) EndGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameUseCase.EndGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeChoice - empty fields stay empty so the use case can apply its defaults.
func decodeChoice(r *http.Request) (entity.Difficulty, entity.Mark, error) {
	var req choiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", entity.EmptyCell, fmt.Errorf("%w: %w", errBadRequestBody, err)
	}

	var (
		difficulty entity.Difficulty
		mark       entity.Mark
		err        error
	)

	if req.Difficulty != "" {
		if difficulty, err = entity.ParseDifficulty(req.Difficulty); err != nil {
			return "", entity.EmptyCell, err
		}
	}

	if req.Mark != "" {
		if mark, err = entity.ParseMark(req.Mark); err != nil {
			return "", entity.EmptyCell, err
		}
	}

	return difficulty, mark, nil
}

func (that *gameHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *gameHandler) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequestBody),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrUnknownDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
