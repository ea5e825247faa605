// Package cache keeps each user's recent turns in process.
package cache

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"campus-advisor/internal/chat"
	"campus-advisor/internal/chat/repository"
)

const (
	DefaultSize = 1000
	DefaultTTL  = 10 * time.Minute
)

type lruCache struct {
	lru *expirable.LRU[string, []chat.Message]
}

var _ repository.HistoryCache = (*lruCache)(nil)

// New creates an expiring LRU history cache.
func New(size int, ttl time.Duration) *lruCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &lruCache{lru: expirable.NewLRU[string, []chat.Message](size, nil, ttl)}
}

func (c *lruCache) Get(_ context.Context, userID string) ([]chat.Message, bool) {
	msgs, ok := c.lru.Get(userID)
	if !ok {
		return nil, false
	}
	return slices.Clone(msgs), true
}

func (c *lruCache) Set(_ context.Context, userID string, msgs []chat.Message) {
	c.lru.Add(userID, slices.Clone(msgs))
}

func (c *lruCache) Invalidate(_ context.Context, userID string) {
	c.lru.Remove(userID)
}
