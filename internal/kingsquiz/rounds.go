package kingsquiz

import (
	"github.com/playroomlabs/kingsquiz-backend/internal/apperror"
	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

const minPlayers = 2

// RoundResult is what the round-advance boundary reports back.
type RoundResult struct {
	NewRound    int    `json:"new_round"`
	NewKingName string `json:"new_king_name"`
	IsGameOver  bool   `json:"is_game_over"`
}

// AdvanceRound - server-authoritative round transition. The caller's
// believedCurrentRound is trusted as the basis for the step (optimistic
// concurrency under the single-writer-per-session contract), so a stale
// caller recomputes the same transition instead of double-advancing.
// Rejections leave the game untouched; the transition applies fully or
// not at all.
func AdvanceRound(game *entity.Game, believedCurrentRound int) (*RoundResult, error) {
	if game == nil || len(game.Players) == 0 {
		return nil, apperror.ErrNoPlayers
	}

	if len(game.Players) < minPlayers {
		return nil, apperror.ErrNotEnoughPlayers
	}

	// CurrentRound may never exceed MaxRounds, so the last acceptable
	// believed round is the one whose advance ends the game
	if believedCurrentRound >= game.Difficulty.MaxRounds() {
		return nil, apperror.ErrGameFinished
	}

	nextRound := believedCurrentRound + 1
	isGameOver := nextRound >= game.Difficulty.MaxRounds()

	newKingIndex := game.KingIndex
	if !isGameOver {
		index, err := nextKingIndex(game)
		if err != nil {
			return nil, err
		}
		newKingIndex = index
	}

	game.CurrentRound = nextRound
	game.SetKing(newKingIndex)

	result := &RoundResult{
		NewRound:   nextRound,
		IsGameOver: isGameOver,
	}
	if king := game.King(); king != nil {
		result.NewKingName = king.Name
	}

	return result, nil
}

// nextKingIndex - circular King rotation in roster order. Re-validates the
// minimum roster on purpose, independently of AdvanceRound's own check.
func nextKingIndex(game *entity.Game) (int, error) {
	if len(game.Players) < minPlayers {
		return 0, apperror.ErrNotEnoughPlayers
	}

	if game.KingIndex < 0 || game.KingIndex >= len(game.Players) {
		return 0, nil
	}

	return (game.KingIndex + 1) % len(game.Players), nil
}
