package kingsquiz

import "github.com/playroomlabs/kingsquiz-backend/internal/entity"

// RoundPoints is the flat award for one correct guess. No partial credit.
const RoundPoints = 10

// SimilarityJudge decides whether a guess matches the King's answer.
type SimilarityJudge func(kingAnswer, guess string) (bool, error)

// EvaluateAnswers - judges every recorded guess against the King's answer,
// awards points and stores the match map on the question. A judging failure
// for one guess degrades to "no match" for that guess only. Evaluation is
// a no-op returning an empty map while the King has not answered; the
// caller decides whether that is worth a warning. A round that is already
// scored is frozen: re-evaluation returns the stored results without
// touching scores or counters.
func EvaluateAnswers(game *entity.Game, question *entity.GameQuestion, judge SimilarityJudge) map[string]bool {
	results := make(map[string]bool)
	if question == nil || IsKingTurn(question) {
		return results
	}

	if question.IsScored() {
		return question.Matches
	}

	for name, guess := range question.Guesses {
		match, err := judge(question.KingAnswer, guess)
		if err != nil {
			match = false
		}
		results[name] = match

		player := game.PlayerByName(name)
		if player == nil {
			continue
		}

		player.GuessesTotal++
		if match {
			player.GuessesCorrect++
		}
		player.Score += CalculateRoundScore(match)
	}

	question.Matches = results

	return results
}

// CalculateRoundScore - the single place the scoring constant lives;
// display layers call it too.
func CalculateRoundScore(isMatch bool) int {
	if isMatch {
		return RoundPoints
	}

	return 0
}
