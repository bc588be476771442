package entity

import "time"

// GameSummary is the record handed to the history collaborator once a
// session finishes.
type GameSummary struct {
	GameID       string         `json:"game_id"`
	Difficulty   Difficulty     `json:"difficulty"`
	RoundsPlayed int            `json:"rounds_played"`
	FinalScores  map[string]int `json:"final_scores"`
	FinishedAt   time.Time      `json:"finished_at"`
}

func NewGameSummary(game *Game) *GameSummary {
	scores := make(map[string]int, len(game.Players))
	for _, player := range game.Players {
		scores[player.Name] = player.Score
	}

	return &GameSummary{
		GameID:       game.ID,
		Difficulty:   game.Difficulty,
		RoundsPlayed: game.CurrentRound,
		FinalScores:  scores,
		FinishedAt:   time.Now(),
	}
}
