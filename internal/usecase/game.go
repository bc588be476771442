// Package usecase glues the game rules, the question provider and the
// external collaborators together. The session registry serializes all
// state-changing operations per game: one in-flight mutation per session
// at a time, so the rules layer can mutate the Game without its own
// locking.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/playroomlabs/kingsquiz-backend/internal/apperror"
	"github.com/playroomlabs/kingsquiz-backend/internal/broadcast"
	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
	"github.com/playroomlabs/kingsquiz-backend/internal/kingsquiz"
)

const summarySaveTimeout = 5 * time.Second

type questionProvider interface {
	GenerateQuestion(ctx context.Context, difficulty entity.Difficulty, previousQuestion string) entity.Question
	CheckSimilarity(ctx context.Context, answerA, answerB string) bool
	LastQuestionText() string
}

type summaryRepo interface {
	Save(ctx context.Context, summary *entity.GameSummary) error
}

type broadcaster interface {
	Publish(ctx context.Context, event broadcast.Event) error
}

type session struct {
	mu   sync.Mutex
	game *entity.Game
}

type GameUseCase struct {
	logger      *slog.Logger
	provider    questionProvider
	summaries   summaryRepo
	broadcaster broadcaster

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewGameUseCase(logger *slog.Logger, provider questionProvider, summaries summaryRepo, broadcaster broadcaster) *GameUseCase {
	return &GameUseCase{
		logger:      logger.With("component", "game_usecase"),
		provider:    provider,
		summaries:   summaries,
		broadcaster: broadcaster,

		sessions: make(map[string]*session),
	}
}

// StartGame - creates a session with the given roster; the first player
// starts as King.
func (that *GameUseCase) StartGame(_ context.Context, playerNames []string, difficulty entity.Difficulty) (*entity.Game, error) {
	if len(playerNames) < 2 {
		return nil, apperror.ErrNotEnoughPlayers
	}

	seen := make(map[string]struct{}, len(playerNames))
	players := make([]*entity.Player, 0, len(playerNames))
	for _, name := range playerNames {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicatePlayer, name)
		}
		seen[name] = struct{}{}
		players = append(players, entity.NewPlayer(name))
	}

	game := entity.NewGame(uuid.NewString(), players, difficulty)

	that.mu.Lock()
	that.sessions[game.ID] = &session{game: game}
	that.mu.Unlock()

	return game, nil
}

func (that *GameUseCase) GetGame(gameID string) (*entity.Game, error) {
	gameSession, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	return gameSession.game, nil
}

// NextQuestion - asks the provider for a fresh question and starts a new
// round with it. The provider's last-question memo keeps consecutive
// questions from repeating.
func (that *GameUseCase) NextQuestion(ctx context.Context, gameID string) (*entity.GameQuestion, error) {
	gameSession, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	gameSession.mu.Lock()
	defer gameSession.mu.Unlock()

	game := gameSession.game
	if game.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	generated := that.provider.GenerateQuestion(ctx, game.Difficulty, that.provider.LastQuestionText())

	return game.AddQuestion(generated), nil
}

// SubmitAnswer - records the King's answer or a guess, routed by whose
// turn the empty-answer signal says it is.
func (that *GameUseCase) SubmitAnswer(_ context.Context, gameID, playerName, answer string) (*entity.Game, error) {
	gameSession, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	gameSession.mu.Lock()
	defer gameSession.mu.Unlock()

	game := gameSession.game
	currentQuestion := game.CurrentQuestion()
	if currentQuestion == nil {
		return nil, apperror.ErrNoActiveRound
	}

	if currentQuestion.IsScored() {
		return nil, apperror.ErrRoundAlreadyScored
	}

	player := game.PlayerByName(playerName)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, playerName)
	}

	if kingsquiz.IsKingTurn(currentQuestion) {
		if !player.IsKing {
			return nil, apperror.ErrNotYourTurn
		}

		currentQuestion.KingAnswer = answer
		return game, nil
	}

	if player.IsKing {
		return nil, apperror.ErrNotYourTurn
	}

	if _, ok := currentQuestion.Guesses[playerName]; ok {
		return nil, apperror.ErrAlreadyAnswered
	}

	currentQuestion.Guesses[playerName] = answer

	return game, nil
}

// ScoreRound - evaluates every recorded guess with the provider as the
// similarity judge and broadcasts the results. Calling it before the King
// has answered is logged and yields an empty result, not an error.
func (that *GameUseCase) ScoreRound(ctx context.Context, gameID string) (map[string]bool, error) {
	log := that.logger.With("method", "ScoreRound", "game_id", gameID)

	gameSession, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	gameSession.mu.Lock()
	defer gameSession.mu.Unlock()

	game := gameSession.game
	currentQuestion := game.CurrentQuestion()
	if currentQuestion == nil {
		return nil, apperror.ErrNoActiveRound
	}

	if kingsquiz.IsKingTurn(currentQuestion) {
		log.Warn("king has not answered yet, skipping evaluation")
		return map[string]bool{}, nil
	}

	// a retried request must not re-award points for a finalized round
	if currentQuestion.IsScored() {
		return currentQuestion.Matches, nil
	}

	judge := func(kingAnswer, guess string) (bool, error) {
		return that.provider.CheckSimilarity(ctx, kingAnswer, guess), nil
	}

	results := kingsquiz.EvaluateAnswers(game, currentQuestion, judge)

	that.publish(ctx, broadcast.Event{
		Type:    broadcast.EventRoundScored,
		GameID:  game.ID,
		Round:   game.CurrentRound,
		Scores:  that.scoreSnapshot(game),
		Matches: results,
	})

	return results, nil
}

// AdvanceRound - server-authoritative round transition; on game over the
// summary is saved fire-and-forget so the game loop never blocks on
// persistence.
func (that *GameUseCase) AdvanceRound(ctx context.Context, gameID string, believedCurrentRound int) (*kingsquiz.RoundResult, error) {
	log := that.logger.With("method", "AdvanceRound", "game_id", gameID)

	gameSession, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	gameSession.mu.Lock()
	defer gameSession.mu.Unlock()

	game := gameSession.game
	result, err := kingsquiz.AdvanceRound(game, believedCurrentRound)
	if err != nil {
		return nil, fmt.Errorf("failed to advance round: %w", err)
	}

	that.publish(ctx, broadcast.Event{
		Type:       broadcast.EventRoundAdvanced,
		GameID:     game.ID,
		Round:      result.NewRound,
		KingName:   result.NewKingName,
		IsGameOver: result.IsGameOver,
		Scores:     that.scoreSnapshot(game),
	})

	if result.IsGameOver {
		summary := entity.NewGameSummary(game)
		go func() {
			saveCtx, cancel := context.WithTimeout(context.Background(), summarySaveTimeout)
			defer cancel()

			if saveErr := that.summaries.Save(saveCtx, summary); saveErr != nil {
				log.Error("failed to save game summary", "error", saveErr)
			}
		}()
	}

	return result, nil
}

// GenerateQuestion - the standalone question-generation boundary; the
// difficulty string is optional and defaults per ParseDifficulty.
func (that *GameUseCase) GenerateQuestion(ctx context.Context, difficulty string) entity.Question {
	parsed := entity.ParseDifficulty(difficulty)
	return that.provider.GenerateQuestion(ctx, parsed, that.provider.LastQuestionText())
}

// CheckSimilarity - the standalone answer-similarity boundary.
func (that *GameUseCase) CheckSimilarity(ctx context.Context, answerA, answerB string) bool {
	return that.provider.CheckSimilarity(ctx, answerA, answerB)
}

func (that *GameUseCase) getSession(gameID string) (*session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	gameSession, ok := that.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	return gameSession, nil
}

func (that *GameUseCase) scoreSnapshot(game *entity.Game) map[string]int {
	scores := make(map[string]int, len(game.Players))
	for _, player := range game.Players {
		scores[player.Name] = player.Score
	}

	return scores
}

func (that *GameUseCase) publish(ctx context.Context, event broadcast.Event) {
	if err := that.broadcaster.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish event", "type", event.Type, "game_id", event.GameID, "error", err)
	}
}
