package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

func Start(logger *slog.Logger, port string, useCase gameUseCase) error {
	h := NewHandlers(logger, useCase)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /game", h.CreateGame)
	mux.HandleFunc("GET /game/{id}", h.GetGame)
	mux.HandleFunc("POST /game/question", h.NextQuestion)
	mux.HandleFunc("POST /game/answer", h.SubmitAnswer)
	mux.HandleFunc("POST /game/score", h.ScoreRound)
	mux.HandleFunc("POST /game/round/advance", h.AdvanceRound)
	mux.HandleFunc("POST /question", h.GenerateQuestion)
	mux.HandleFunc("POST /similarity", h.CheckSimilarity)
	mux.HandleFunc("/ping", h.Ping)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
