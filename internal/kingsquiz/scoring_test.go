package kingsquiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

var errJudgeUnavailable = errors.New("judge unavailable")

func TestCalculateRoundScore(t *testing.T) {
	assert.Equal(t, 10, CalculateRoundScore(true))
	assert.Equal(t, 0, CalculateRoundScore(false))
}

func TestEvaluateAnswers(t *testing.T) {
	exactJudge := func(kingAnswer, guess string) (bool, error) {
		return kingAnswer == guess, nil
	}

	t.Run("Awards 10 points per matching guess and none otherwise", func(t *testing.T) {
		// Given: a scored-ready round with one right and one wrong guess
		game := newTestGame("king", "a", "b")
		question := entity.NewGameQuestion(entity.Question{Text: "q"})
		question.KingAnswer = "pizza"
		question.Guesses["a"] = "pizza"
		question.Guesses["b"] = "pasta"

		// When: evaluating the round
		results := EvaluateAnswers(game, question, exactJudge)

		// Then: the matcher gains exactly 10 points, the other exactly 0
		require.Len(t, results, 2)
		assert.True(t, results["a"])
		assert.False(t, results["b"])
		assert.Equal(t, 10, game.PlayerByName("a").Score)
		assert.Equal(t, 0, game.PlayerByName("b").Score)
	})

	t.Run("Stores the match map on the question", func(t *testing.T) {
		game := newTestGame("king", "a", "b")
		question := entity.NewGameQuestion(entity.Question{Text: "q"})
		question.KingAnswer = "pizza"
		question.Guesses["a"] = "pizza"

		results := EvaluateAnswers(game, question, exactJudge)

		assert.Equal(t, results, question.Matches)
		assert.True(t, question.IsScored())
	})

	t.Run("No-op with empty result map while the King has not answered", func(t *testing.T) {
		game := newTestGame("king", "a", "b")
		question := entity.NewGameQuestion(entity.Question{Text: "q"})
		question.Guesses["a"] = "pizza"

		results := EvaluateAnswers(game, question, exactJudge)

		assert.Empty(t, results)
		assert.Equal(t, 0, game.PlayerByName("a").Score)
	})

	t.Run("A failed judgment degrades to no-match without aborting the round", func(t *testing.T) {
		// Given: a judge that fails for one specific guess
		game := newTestGame("king", "a", "b")
		question := entity.NewGameQuestion(entity.Question{Text: "q"})
		question.KingAnswer = "pizza"
		question.Guesses["a"] = "broken"
		question.Guesses["b"] = "pizza"

		judge := func(kingAnswer, guess string) (bool, error) {
			if guess == "broken" {
				return false, errJudgeUnavailable
			}
			return kingAnswer == guess, nil
		}

		// When: evaluating the round
		results := EvaluateAnswers(game, question, judge)

		// Then: the failing guess counts as no-match, the rest are judged
		require.Len(t, results, 2)
		assert.False(t, results["a"])
		assert.True(t, results["b"])
		assert.Equal(t, 10, game.PlayerByName("b").Score)
	})

	t.Run("A finalized round is frozen against re-evaluation", func(t *testing.T) {
		// Given: a round that was already scored
		game := newTestGame("king", "a", "b")
		question := entity.NewGameQuestion(entity.Question{Text: "q"})
		question.KingAnswer = "pizza"
		question.Guesses["a"] = "pizza"
		first := EvaluateAnswers(game, question, exactJudge)
		require.Equal(t, 10, game.PlayerByName("a").Score)

		// When: evaluating the same round again
		second := EvaluateAnswers(game, question, exactJudge)

		// Then: the stored results come back and nothing is re-awarded
		assert.Equal(t, first, second)
		assert.Equal(t, 10, game.PlayerByName("a").Score)
		assert.Equal(t, 1, game.PlayerByName("a").GuessesTotal)
		assert.Equal(t, 1, game.PlayerByName("a").GuessesCorrect)
	})

	t.Run("Updates lifetime accuracy counters", func(t *testing.T) {
		game := newTestGame("king", "a", "b")
		question := entity.NewGameQuestion(entity.Question{Text: "q"})
		question.KingAnswer = "pizza"
		question.Guesses["a"] = "pizza"
		question.Guesses["b"] = "pasta"

		EvaluateAnswers(game, question, exactJudge)

		a := game.PlayerByName("a")
		b := game.PlayerByName("b")
		assert.Equal(t, 1, a.GuessesTotal)
		assert.Equal(t, 1, a.GuessesCorrect)
		assert.Equal(t, 1, b.GuessesTotal)
		assert.Equal(t, 0, b.GuessesCorrect)
	})
}
