// Package repository persists finished-game summaries. The game loop
// treats it as fire-and-forget; nothing here is on the hot path of a
// round.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/playroomlabs/kingsquiz-backend/internal/entity"
)

var ErrSummaryNotFound = errors.New("game summary not found")

const (
	recentSummariesKey = "summaries:recent"
	recentSummariesMax = 100
)

type SummaryRepository interface {
	Save(ctx context.Context, summary *entity.GameSummary) error
	GetByGameID(ctx context.Context, gameID string) (*entity.GameSummary, error)
	Recent(ctx context.Context, limit int64) ([]*entity.GameSummary, error)
}

type dbSummary struct {
	client *redis.Client
}

func NewSummaryRepository(client *redis.Client) SummaryRepository {
	return &dbSummary{
		client: client,
	}
}

func (that *dbSummary) Save(ctx context.Context, summary *entity.GameSummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("could not marshal summary: %w", err)
	}

	summaryKey := "summary:" + summary.GameID
	if err = that.client.Set(ctx, summaryKey, summaryJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set summary: %w", err)
	}

	if err = that.client.LPush(ctx, recentSummariesKey, summary.GameID).Err(); err != nil {
		return fmt.Errorf("failed to push summary to recent list: %w", err)
	}

	if err = that.client.LTrim(ctx, recentSummariesKey, 0, recentSummariesMax-1).Err(); err != nil {
		return fmt.Errorf("failed to trim recent list: %w", err)
	}

	return nil
}

func (that *dbSummary) GetByGameID(ctx context.Context, gameID string) (*entity.GameSummary, error) {
	summaryKey := "summary:" + gameID

	response, err := that.client.Get(ctx, summaryKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrSummaryNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get summary by game ID: %w", err)
	}

	var summary entity.GameSummary
	if err = json.Unmarshal([]byte(response), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}

func (that *dbSummary) Recent(ctx context.Context, limit int64) ([]*entity.GameSummary, error) {
	if limit <= 0 {
		limit = recentSummariesMax
	}

	gameIDs, err := that.client.LRange(ctx, recentSummariesKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent summaries: %w", err)
	}

	summaries := make([]*entity.GameSummary, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		summary, err := that.GetByGameID(ctx, gameID)
		if errors.Is(err, ErrSummaryNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
