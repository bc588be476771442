// Package openai adapts the OpenAI chat completion API to the provider's
// CompletionClient boundary and classifies failures for the retry policy.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/playroomlabs/kingsquiz-backend/internal/question"
)

var ErrNoChoices = errors.New("completion returned no choices")

type Client struct {
	api   *goopenai.Client
	model string
}

func New(apiKey, model, baseURL string) *Client {
	conf := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}

	if model == "" {
		model = goopenai.GPT4oMini
	}

	return &Client{
		api:   goopenai.NewClientWithConfig(conf),
		model: model,
	}
}

func (that *Client) Complete(ctx context.Context, messages []question.PromptMessage, params question.GenerationParams) (string, error) {
	request := goopenai.ChatCompletionRequest{
		Model:       that.model,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		TopP:        params.TopP,
	}

	for _, message := range messages {
		request.Messages = append(request.Messages, goopenai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	response, err := that.api.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", classify(err)
	}

	if len(response.Choices) == 0 {
		return "", ErrNoChoices
	}

	return response.Choices[0].Message.Content, nil
}

// classify - rate limits and server-side errors are transient; auth and
// malformed-request failures are permanent. Anything below the HTTP layer
// (timeouts, connection resets) is worth retrying.
func classify(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= http.StatusInternalServerError {
			return &question.TransientError{Err: fmt.Errorf("openai api: %w", err)}
		}

		return fmt.Errorf("openai api: %w", err)
	}

	return &question.TransientError{Err: fmt.Errorf("openai request: %w", err)}
}
