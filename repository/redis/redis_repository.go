package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisclient "github.com/owuwix/wiishy/cmd/redis"
	"github.com/owuwix/wiishy/model"
)

// Repository defines methods for interacting with Redis key-values:
// session records (the persisted "who is logged in" state) and the
// per-user recent-activity feed.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	PushActivity(ctx context.Context, entry *model.ActivityEntry, maxEntries int, ttl time.Duration) error
	RecentActivity(ctx context.Context, userID uint64, limit int) ([]model.ActivityEntry, error)
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}

// PushActivity prepends an entry to the user's feed, capped at maxEntries.
func (r *redis) PushActivity(ctx context.Context, entry *model.ActivityEntry, maxEntries int, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	key := activityKey(entry.UserID)
	pipe := client.TxPipeline()
	pipe.LPush(ctx, key, body)
	pipe.LTrim(ctx, key, 0, int64(maxEntries-1))
	pipe.Expire(ctx, key, ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// RecentActivity returns the newest entries first.
func (r *redis) RecentActivity(ctx context.Context, userID uint64, limit int) ([]model.ActivityEntry, error) {
	client := redisclient.Get()
	if client == nil {
		return []model.ActivityEntry{}, nil
	}

	vals, err := client.LRange(ctx, activityKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.ActivityEntry, 0, len(vals))
	for _, v := range vals {
		var entry model.ActivityEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			// skip entries written by an older shape
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func activityKey(userID uint64) string {
	return fmt.Sprintf("activity:%d", userID)
}
