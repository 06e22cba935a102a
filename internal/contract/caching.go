package contract

import (
	"context"
	"time"

	"github.com/apell0/managerspelet/internal/cache"
	"github.com/apell0/managerspelet/internal/world"
)

// CachingProjector wraps Project with a Redis cache-aside layer keyed by
// (career_id, world_version), per spec §11's note that a contract
// projection is worth memoizing since it fans out over the whole league.
// It calls Client.Get/Set directly rather than GetOrCompute so a cache hit
// still unmarshals into a concrete *Contract instead of a generic map.
type CachingProjector struct {
	Cache *cache.Client
	TTL   time.Duration
}

// NewCachingProjector builds a projector that stores entries in the given
// cache client with the given ttl.
func NewCachingProjector(c *cache.Client, ttl time.Duration) *CachingProjector {
	return &CachingProjector{Cache: c, TTL: ttl}
}

// Project returns the cached contract for w's current version if present,
// otherwise computes, caches, and returns a fresh one.
func (p *CachingProjector) Project(ctx context.Context, w *world.GameState) (*Contract, error) {
	key := p.Cache.Key(w.Meta.CareerID, w.Meta.Version)

	var cached Contract
	if p.Cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	computed := Project(w)
	_ = p.Cache.Set(ctx, key, computed, p.TTL)
	return computed, nil
}
