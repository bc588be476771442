package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/playroomlabs/kingsquiz-backend/internal/apperror"
	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
	"github.com/playroomlabs/kingsquiz-backend/internal/kingsquiz"
)

type gameUseCase interface {
	StartGame(ctx context.Context, playerNames []string, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(gameID string) (*entity.Game, error)
	NextQuestion(ctx context.Context, gameID string) (*entity.GameQuestion, error)
	SubmitAnswer(ctx context.Context, gameID, playerName, answer string) (*entity.Game, error)
	ScoreRound(ctx context.Context, gameID string) (map[string]bool, error)
	AdvanceRound(ctx context.Context, gameID string, believedCurrentRound int) (*kingsquiz.RoundResult, error)
	GenerateQuestion(ctx context.Context, difficulty string) entity.Question
	CheckSimilarity(ctx context.Context, answerA, answerB string) bool
}

type Handlers struct {
	logger  *slog.Logger
	useCase gameUseCase
}

func NewHandlers(logger *slog.Logger, useCase gameUseCase) *Handlers {
	return &Handlers{
		logger:  logger.With("component", "rest"),
		useCase: useCase,
	}
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

type createGameRequest struct {
	Players    []string `json:"players"`
	Difficulty string   `json:"difficulty"`
}

func (that *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var request createGameRequest
	if !that.decode(w, r, &request) {
		return
	}

	game, err := that.useCase.StartGame(r.Context(), request.Players, entity.ParseDifficulty(request.Difficulty))
	if err != nil {
		that.writeRejection(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.useCase.GetGame(r.PathValue("id"))
	if err != nil {
		that.writeRejection(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

type gameRequest struct {
	GameID string `json:"game_id"`
}

func (that *Handlers) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var request gameRequest
	if !that.decode(w, r, &request) {
		return
	}

	gameQuestion, err := that.useCase.NextQuestion(r.Context(), request.GameID)
	if err != nil {
		that.writeRejection(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameQuestion)
}

type submitAnswerRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
	Answer     string `json:"answer"`
}

func (that *Handlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var request submitAnswerRequest
	if !that.decode(w, r, &request) {
		return
	}

	game, err := that.useCase.SubmitAnswer(r.Context(), request.GameID, request.PlayerName, request.Answer)
	if err != nil {
		that.writeRejection(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Handlers) ScoreRound(w http.ResponseWriter, r *http.Request) {
	var request gameRequest
	if !that.decode(w, r, &request) {
		return
	}

	matches, err := that.useCase.ScoreRound(r.Context(), request.GameID)
	if err != nil {
		that.writeRejection(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

type advanceRoundRequest struct {
	GameID               string `json:"game_id"`
	BelievedCurrentRound int    `json:"believed_current_round"`
}

type advanceRoundResponse struct {
	Success     bool   `json:"success"`
	NewRound    int    `json:"new_round,omitempty"`
	NewKingName string `json:"new_king_name,omitempty"`
	IsGameOver  bool   `json:"is_game_over,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func (that *Handlers) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	var request advanceRoundRequest
	if !that.decode(w, r, &request) {
		return
	}

	result, err := that.useCase.AdvanceRound(r.Context(), request.GameID, request.BelievedCurrentRound)
	if err != nil {
		that.writeJSON(w, statusFor(err), advanceRoundResponse{
			Success: false,
			Reason:  err.Error(),
		})
		return
	}

	that.writeJSON(w, http.StatusOK, advanceRoundResponse{
		Success:     true,
		NewRound:    result.NewRound,
		NewKingName: result.NewKingName,
		IsGameOver:  result.IsGameOver,
	})
}

type generateQuestionRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}

func (that *Handlers) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	var request generateQuestionRequest
	if !that.decode(w, r, &request) {
		return
	}

	question := that.useCase.GenerateQuestion(r.Context(), request.Difficulty)

	that.writeJSON(w, http.StatusOK, question)
}

type similarityRequest struct {
	AnswerA string `json:"answer_a"`
	AnswerB string `json:"answer_b"`
}

func (that *Handlers) CheckSimilarity(w http.ResponseWriter, r *http.Request) {
	var request similarityRequest
	if !that.decode(w, r, &request) {
		return
	}

	match := that.useCase.CheckSimilarity(r.Context(), request.AnswerA, request.AnswerB)

	that.writeJSON(w, http.StatusOK, map[string]bool{"match": match})
}

func (that *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		that.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": "malformed request body"})
		return false
	}

	return true
}

func (that *Handlers) writeRejection(w http.ResponseWriter, err error) {
	that.writeJSON(w, statusFor(err), map[string]string{"reason": err.Error()})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound), errors.Is(err, apperror.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrAlreadyAnswered),
		errors.Is(err, apperror.ErrRoundAlreadyScored), errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}
