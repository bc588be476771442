package entity

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const (
	easyMaxRounds   = 3
	mediumMaxRounds = 5
	hardMaxRounds   = 7
)

// ParseDifficulty - maps a raw difficulty string to a known Difficulty.
// Unknown or empty input falls back to DifficultyEasy.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(raw) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(raw)
	default:
		return DifficultyEasy
	}
}

func (that Difficulty) MaxRounds() int {
	switch that {
	case DifficultyMedium:
		return mediumMaxRounds
	case DifficultyHard:
		return hardMaxRounds
	default:
		return easyMaxRounds
	}
}

// Game holds the full state of one quiz session: the roster, the current
// King, every question asked so far and the round counter.
type Game struct {
	ID           string          `json:"id"`
	Players      []*Player       `json:"players"`
	KingIndex    int             `json:"king_index"`
	Questions    []*GameQuestion `json:"questions,omitempty"`
	CurrentRound int             `json:"current_round"`
	Difficulty   Difficulty      `json:"difficulty"`
}

func NewGame(id string, players []*Player, difficulty Difficulty) *Game {
	game := &Game{
		ID:         id,
		Players:    players,
		Difficulty: difficulty,
	}

	if len(players) > 0 {
		game.SetKing(0)
	}

	return game
}

// King - returns the current King, or nil if the roster is empty.
func (that *Game) King() *Player {
	if that.KingIndex < 0 || that.KingIndex >= len(that.Players) {
		return nil
	}

	return that.Players[that.KingIndex]
}

// NonKingPlayers - returns the guessing players in roster order.
func (that *Game) NonKingPlayers() []*Player {
	guessers := make([]*Player, 0, len(that.Players))
	for i, player := range that.Players {
		if i == that.KingIndex {
			continue
		}
		guessers = append(guessers, player)
	}

	return guessers
}

func (that *Game) PlayerByName(name string) *Player {
	for _, player := range that.Players {
		if player.Name == name {
			return player
		}
	}

	return nil
}

// SetKing - makes the player at index the single King, clearing the flag
// on everyone else and keeping KingIndex in sync.
func (that *Game) SetKing(index int) {
	if index < 0 || index >= len(that.Players) {
		return
	}

	that.KingIndex = index
	for i, player := range that.Players {
		player.IsKing = i == index
	}
}

// CurrentQuestion - returns the question of the round in progress, or nil
// if no round has been started yet.
func (that *Game) CurrentQuestion() *GameQuestion {
	if len(that.Questions) == 0 {
		return nil
	}

	return that.Questions[len(that.Questions)-1]
}

// AddQuestion - starts a new round with the given question.
func (that *Game) AddQuestion(question Question) *GameQuestion {
	gameQuestion := NewGameQuestion(question)
	that.Questions = append(that.Questions, gameQuestion)

	return gameQuestion
}

func (that *Game) IsOver() bool {
	return that.CurrentRound >= that.Difficulty.MaxRounds()
}

// GameQuestion is the per-round state: the generated question, the King's
// answer, every recorded guess and the match results once scored. An empty
// KingAnswer is the turn-phase signal - there is no separate phase field.
type GameQuestion struct {
	Question   Question          `json:"question"`
	KingAnswer string            `json:"king_answer,omitempty"`
	Guesses    map[string]string `json:"guesses"`
	Matches    map[string]bool   `json:"matches,omitempty"`
}

func NewGameQuestion(question Question) *GameQuestion {
	return &GameQuestion{
		Question: question,
		Guesses:  make(map[string]string),
	}
}

// IsScored - reports whether the round's results were already finalized.
func (that *GameQuestion) IsScored() bool {
	return that.Matches != nil
}

// Question is a generated prompt for the King.
type Question struct {
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
