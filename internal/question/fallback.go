package question

import (
	"sync"
	"time"

	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

// fallbackQuestions is the fixed pool served when the upstream AI is
// unavailable. Every difficulty bucket is non-empty.
var fallbackQuestions = map[entity.Difficulty][]string{
	entity.DifficultyEasy: {
		"What is your favorite food?",
		"What is your favorite color?",
		"Are you a morning person or a night owl?",
		"What drink do you order most often?",
		"Cats or dogs?",
	},
	entity.DifficultyMedium: {
		"What was your first job?",
		"What is the best trip you have ever taken?",
		"What song do you secretly love?",
		"What did you want to be when you were ten?",
		"What is your go-to comfort movie?",
	},
	entity.DifficultyHard: {
		"What is an unusual fear you have?",
		"What is the strangest thing you have ever eaten?",
		"What white lie do you tell most often?",
		"What is a hobby you gave up on?",
		"What would your last meal be?",
	},
}

// fallbackPool deals questions from the fixed pool round-robin per
// difficulty. Next never returns an empty question.
type fallbackPool struct {
	mu      sync.Mutex
	cursors map[entity.Difficulty]int
}

func newFallbackPool() *fallbackPool {
	return &fallbackPool{cursors: make(map[entity.Difficulty]int)}
}

func (that *fallbackPool) Next(difficulty entity.Difficulty) entity.Question {
	texts, ok := fallbackQuestions[difficulty]
	if !ok {
		difficulty = entity.DifficultyEasy
		texts = fallbackQuestions[difficulty]
	}

	that.mu.Lock()
	cursor := that.cursors[difficulty]
	that.cursors[difficulty] = cursor + 1
	that.mu.Unlock()

	return entity.Question{
		Text:      texts[cursor%len(texts)],
		Category:  string(difficulty),
		CreatedAt: time.Now(),
	}
}
