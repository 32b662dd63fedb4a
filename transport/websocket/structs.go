package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	actionGameNew     = "game:new"
	actionGameGet     = "game:get"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
	actionGameDelete  = "game:delete"

	// actionError answers messages that could not be routed to an action.
	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - request fields and reply fields share one shape.
type Payload struct {
	GameID     string `json:"game_id,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Mark       string `json:"mark,omitempty"`
	Cell       *int   `json:"cell,omitempty"`

	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}
