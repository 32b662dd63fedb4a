package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - wires the ping and game routes.
func NewRouter(logger *slog.Logger, gameUseCase gameUseCase) http.Handler {
	ping := NewPingHandler()
	games := NewGameHandler(logger, gameUseCase)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", ping.PingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", games.StartGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", games.GetGame)
			r.Delete("/", games.EndGame)
			r.Post("/turns", games.MakeTurn)
			r.Post("/restart", games.RestartGame)
		})
	})

	return router
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
