package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/marketbay/storefront/internal/core/domain"
)

const activityKey = "activity:feed"

// ActivityStore keeps the admin activity feed as a capped Redis list, newest
// first. Once the cap is reached the oldest entries fall off.
type ActivityStore struct {
	client *redis.Client
	limit  int
}

// NewActivityStore creates an ActivityStore retaining at most limit entries.
func NewActivityStore(client *redis.Client, limit int) *ActivityStore {
	if limit <= 0 {
		limit = 200
	}
	return &ActivityStore{client: client, limit: limit}
}

// Append pushes one entry onto the head of the feed and trims to the cap.
func (a *ActivityStore) Append(ctx context.Context, entry domain.Activity) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode activity: %w", err)
	}

	pipe := a.client.TxPipeline()
	pipe.LPush(ctx, activityKey, payload)
	pipe.LTrim(ctx, activityKey, 0, int64(a.limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. Entries that fail to
// decode are skipped rather than breaking the feed.
func (a *ActivityStore) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 || limit > a.limit {
		limit = a.limit
	}

	raw, err := a.client.LRange(ctx, activityKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read activity feed: %w", err)
	}

	entries := make([]domain.Activity, 0, len(raw))
	for _, item := range raw {
		var entry domain.Activity
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
