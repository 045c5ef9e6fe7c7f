// Package cache is a best-effort read cache for comment list payloads. The
// app works identically without it; it only absorbs repeated reads of the
// same video's comments.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const listTTL = 30 * time.Second

type ListCache struct {
	client *redis.Client
}

// Connect dials Redis and verifies the connection. Callers treat an error as
// "run without caching", not as fatal.
func Connect(ctx context.Context, redisURL string) (*ListCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &ListCache{client: client}, nil
}

func (c *ListCache) Close() error {
	return c.client.Close()
}

func listKey(videoID string) string {
	return "video-comments:" + videoID
}

func (c *ListCache) Get(ctx context.Context, videoID string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, listKey(videoID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("cache read failed", "video_id", videoID, "error", err)
		return nil, false
	}
	return payload, true
}

func (c *ListCache) Set(ctx context.Context, videoID string, payload []byte) {
	if err := c.client.Set(ctx, listKey(videoID), payload, listTTL).Err(); err != nil {
		slog.Warn("cache write failed", "video_id", videoID, "error", err)
	}
}

func (c *ListCache) Invalidate(ctx context.Context, videoID string) {
	if err := c.client.Del(ctx, listKey(videoID)).Err(); err != nil {
		slog.Warn("cache invalidation failed", "video_id", videoID, "error", err)
	}
}
