// Package redis shares each user's recent turns across instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"campus-advisor/internal/chat"
	"campus-advisor/internal/chat/repository"
	"campus-advisor/pkg/log"
)

const (
	keyPrefix  = "advisor:history:"
	DefaultTTL = 10 * time.Minute
)

type redisCache struct {
	client *goredis.Client
	ttl    time.Duration
	l      log.Logger
}

var _ repository.HistoryCache = (*redisCache)(nil)

// Connect parses url, pings the server and returns the cache.
func Connect(ctx context.Context, url string, ttl time.Duration, l log.Logger) (*redisCache, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return New(client, ttl, l), nil
}

// New wraps an existing client.
func New(client *goredis.Client, ttl time.Duration, l log.Logger) *redisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisCache{client: client, ttl: ttl, l: l}
}

func key(userID string) string {
	return keyPrefix + userID
}

// Get treats every failure as a miss so the store stays the source of truth.
func (c *redisCache) Get(ctx context.Context, userID string) ([]chat.Message, bool) {
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false
	}
	if err != nil {
		c.l.Warnf(ctx, "chat.cache.redis.Get: %v", err)
		return nil, false
	}

	var msgs []chat.Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		c.l.Warnf(ctx, "chat.cache.redis.Get: decode: %v", err)
		return nil, false
	}
	return msgs, true
}

func (c *redisCache) Set(ctx context.Context, userID string, msgs []chat.Message) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		c.l.Warnf(ctx, "chat.cache.redis.Set: encode: %v", err)
		return
	}
	if err := c.client.Set(ctx, key(userID), raw, c.ttl).Err(); err != nil {
		c.l.Warnf(ctx, "chat.cache.redis.Set: %v", err)
	}
}

func (c *redisCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		c.l.Warnf(ctx, "chat.cache.redis.Invalidate: %v", err)
	}
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
