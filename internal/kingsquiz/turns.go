// Package kingsquiz holds the stateless game rules: turn sequencing,
// guess scoring and the server-authoritative round transition. All
// functions take the Game and the current GameQuestion as explicit inputs.
package kingsquiz

import "github.com/playroomlabs/kingsquiz-backend/internal/entity"

// IsKingTurn - reports whether the King still has to answer. The empty
// KingAnswer field is the sole turn-phase signal.
func IsKingTurn(question *entity.GameQuestion) bool {
	return question.KingAnswer == ""
}

// CurrentPlayerName - returns the name of the player expected to act next:
// the King while the answer is empty, otherwise the first guesser in
// roster order without a recorded guess. Empty string means no action is
// possible.
func CurrentPlayerName(game *entity.Game, question *entity.GameQuestion) string {
	if IsKingTurn(question) {
		if king := game.King(); king != nil {
			return king.Name
		}
		return ""
	}

	for _, player := range game.NonKingPlayers() {
		if _, ok := question.Guesses[player.Name]; !ok {
			return player.Name
		}
	}

	return ""
}

// CurrentGuessingIndex - position of the current player within the ordered
// guessers, or -1 when there is none (including the King's turn).
func CurrentGuessingIndex(game *entity.Game, question *entity.GameQuestion) int {
	name := CurrentPlayerName(game, question)
	if name == "" {
		return -1
	}

	for i, player := range game.NonKingPlayers() {
		if player.Name == name {
			return i
		}
	}

	return -1
}

// HasRemainingGuessers - true while any guesser has not submitted an
// answer for this question.
func HasRemainingGuessers(game *entity.Game, question *entity.GameQuestion) bool {
	for _, player := range game.NonKingPlayers() {
		if _, ok := question.Guesses[player.Name]; !ok {
			return true
		}
	}

	return false
}
