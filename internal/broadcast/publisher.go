// Package broadcast publishes round and score events for other
// participants. Delivery is the boundary layer's problem; this side only
// produces the data.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type EventType string

const (
	EventRoundAdvanced EventType = "round:advanced"
	EventRoundScored   EventType = "round:scored"
)

const channelPrefix = "kingsquiz:events:"

type Event struct {
	Type       EventType       `json:"type"`
	GameID     string          `json:"game_id"`
	Round      int             `json:"round"`
	KingName   string          `json:"king_name,omitempty"`
	IsGameOver bool            `json:"is_game_over,omitempty"`
	Scores     map[string]int  `json:"scores,omitempty"`
	Matches    map[string]bool `json:"matches,omitempty"`
}

type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

func (that *Publisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	channel := channelPrefix + event.GameID
	if err = that.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
