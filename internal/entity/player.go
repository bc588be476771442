package entity

// Player is owned by a single Game; Name is unique within the roster.
type Player struct {
	Name           string `json:"name"`
	Score          int    `json:"score"`
	IsKing         bool   `json:"is_king,omitempty"`
	GuessesTotal   int    `json:"guesses_total"`
	GuessesCorrect int    `json:"guesses_correct"`
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Accuracy - lifetime share of correct guesses, 0 before the first guess.
func (that *Player) Accuracy() float64 {
	if that.GuessesTotal == 0 {
		return 0
	}

	return float64(that.GuessesCorrect) / float64(that.GuessesTotal)
}
