package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	t.Run("Known difficulties parse to themselves", func(t *testing.T) {
		assert.Equal(t, DifficultyEasy, ParseDifficulty("easy"))
		assert.Equal(t, DifficultyMedium, ParseDifficulty("medium"))
		assert.Equal(t, DifficultyHard, ParseDifficulty("hard"))
	})

	t.Run("Unknown or empty input falls back to easy", func(t *testing.T) {
		assert.Equal(t, DifficultyEasy, ParseDifficulty(""))
		assert.Equal(t, DifficultyEasy, ParseDifficulty("nightmare"))
	})
}

func TestDifficulty_MaxRounds(t *testing.T) {
	// Given: the three difficulties
	// Then: they map to 3, 5 and 7 rounds
	assert.Equal(t, 3, DifficultyEasy.MaxRounds())
	assert.Equal(t, 5, DifficultyMedium.MaxRounds())
	assert.Equal(t, 7, DifficultyHard.MaxRounds())
}

func TestNewGame(t *testing.T) {
	t.Run("First player starts as the single King", func(t *testing.T) {
		// Given: a roster of three players
		players := []*Player{NewPlayer("alice"), NewPlayer("bob"), NewPlayer("carol")}

		// When: creating a game
		game := NewGame("g1", players, DifficultyEasy)

		// Then: the first player is King and nobody else
		require.NotNil(t, game.King())
		assert.Equal(t, "alice", game.King().Name)
		assert.True(t, players[0].IsKing)
		assert.False(t, players[1].IsKing)
		assert.False(t, players[2].IsKing)
	})

	t.Run("Empty roster yields no King", func(t *testing.T) {
		game := NewGame("g1", nil, DifficultyEasy)

		assert.Nil(t, game.King())
	})
}

func TestGame_SetKing(t *testing.T) {
	// Given: a game where alice is King
	players := []*Player{NewPlayer("alice"), NewPlayer("bob")}
	game := NewGame("g1", players, DifficultyEasy)

	// When: moving the King role to bob
	game.SetKing(1)

	// Then: exactly one player holds the flag and the index follows
	assert.Equal(t, 1, game.KingIndex)
	assert.False(t, players[0].IsKing)
	assert.True(t, players[1].IsKing)
}

func TestGame_NonKingPlayers(t *testing.T) {
	// Given: a three player game with bob as King
	players := []*Player{NewPlayer("alice"), NewPlayer("bob"), NewPlayer("carol")}
	game := NewGame("g1", players, DifficultyEasy)
	game.SetKing(1)

	// When: listing the guessers
	guessers := game.NonKingPlayers()

	// Then: roster order is preserved and the King is excluded
	require.Len(t, guessers, 2)
	assert.Equal(t, "alice", guessers[0].Name)
	assert.Equal(t, "carol", guessers[1].Name)
}

func TestGame_CurrentQuestion(t *testing.T) {
	t.Run("Returns nil before the first round", func(t *testing.T) {
		game := NewGame("g1", []*Player{NewPlayer("alice"), NewPlayer("bob")}, DifficultyEasy)

		assert.Nil(t, game.CurrentQuestion())
	})

	t.Run("Returns the most recently added question", func(t *testing.T) {
		game := NewGame("g1", []*Player{NewPlayer("alice"), NewPlayer("bob")}, DifficultyEasy)

		game.AddQuestion(Question{Text: "first"})
		current := game.AddQuestion(Question{Text: "second"})

		assert.Same(t, current, game.CurrentQuestion())
		assert.Equal(t, "second", game.CurrentQuestion().Question.Text)
	})
}

func TestGame_IsOver(t *testing.T) {
	// Given: an easy game (3 rounds max)
	game := NewGame("g1", []*Player{NewPlayer("alice"), NewPlayer("bob")}, DifficultyEasy)

	// Then: the game ends once CurrentRound reaches MaxRounds
	game.CurrentRound = 2
	assert.False(t, game.IsOver())

	game.CurrentRound = 3
	assert.True(t, game.IsOver())
}

func TestPlayer_Accuracy(t *testing.T) {
	t.Run("Zero before the first guess", func(t *testing.T) {
		player := NewPlayer("alice")

		assert.Zero(t, player.Accuracy())
	})

	t.Run("Share of correct guesses", func(t *testing.T) {
		player := &Player{Name: "alice", GuessesTotal: 4, GuessesCorrect: 3}

		assert.InDelta(t, 0.75, player.Accuracy(), 1e-9)
	})
}

func TestGameQuestion_IsScored(t *testing.T) {
	question := NewGameQuestion(Question{Text: "q"})

	assert.False(t, question.IsScored())

	question.Matches = map[string]bool{}
	assert.True(t, question.IsScored())
}
