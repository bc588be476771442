package question

import (
	"fmt"

	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// PromptMessage is one role-tagged fragment of an ordered prompt.
type PromptMessage struct {
	Role    string
	Content string
}

const systemInstruction = `You are the question master for "King's Quiz", a party game where one player (the King) answers a question about themselves and the others try to guess that answer. Write short, fun, personal questions that anyone can answer about themselves.`

const defaultDifficultyInstruction = `Write one personal "get to know you" question.`

var difficultyInstructions = map[entity.Difficulty]string{
	entity.DifficultyEasy:   `Write one simple, lighthearted personal question with an obvious short answer, like a favorite food or color.`,
	entity.DifficultyMedium: `Write one personal question that takes a moment of thought, like a memorable trip or a childhood habit.`,
	entity.DifficultyHard:   `Write one tricky, specific personal question that close friends might still get wrong, like an unusual fear or an obscure favorite.`,
}

// BuildQuestionPrompt - pure mapping from (difficulty, previous question)
// to the ordered prompt: the fixed system instruction, a difficulty
// template and either an avoid-repeat or an exactly-one-question
// instruction.
func BuildQuestionPrompt(difficulty entity.Difficulty, previousQuestion string) []PromptMessage {
	instruction, ok := difficultyInstructions[difficulty]
	if !ok {
		instruction = defaultDifficultyInstruction
	}

	messages := []PromptMessage{
		{Role: RoleSystem, Content: systemInstruction},
		{Role: RoleUser, Content: instruction},
	}

	if previousQuestion != "" {
		messages = append(messages, PromptMessage{
			Role:    RoleUser,
			Content: fmt.Sprintf("The previous question was: %q. Ask something different, do not repeat it.", previousQuestion),
		})
	} else {
		messages = append(messages, PromptMessage{
			Role:    RoleUser,
			Content: "Return exactly one question and nothing else.",
		})
	}

	return messages
}

// BuildJudgePrompt - strict yes/no prompt for answer-similarity judging.
func BuildJudgePrompt(kingAnswer, guess string) []PromptMessage {
	return []PromptMessage{
		{
			Role:    RoleSystem,
			Content: `You judge whether two short answers mean the same thing. Reply with exactly "yes" or "no" and nothing else.`,
		},
		{
			Role:    RoleUser,
			Content: fmt.Sprintf("Answer A: %q\nAnswer B: %q\nDo they mean the same thing?", kingAnswer, guess),
		},
	}
}
