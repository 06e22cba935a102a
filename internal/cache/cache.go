package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Client wraps Redis operations for the contract projector's cache-aside
// layer: singleflight protects against a stampede of identical
// `world -> contract` projections, and TTL jitter spreads expirations.
type Client struct {
	Redis  *redis.Client // exported for CLI diagnostics
	sf     singleflight.Group
	config Config
}

// Config defines cache behavior for contract projections.
type Config struct {
	Version string        // bumped to invalidate every cached projection at once
	Enabled bool
	TTL     time.Duration // base TTL for a projected contract
}

// DefaultConfig returns a conservative TTL suited to a contract that goes
// stale the instant a mutating service call persists a new world_version.
func DefaultConfig() Config {
	return Config{Version: "v1", Enabled: true, TTL: 30 * time.Second}
}

// NewClient creates a cache client with singleflight support for
// stampede protection.
func NewClient(redisClient *redis.Client, config Config) *Client {
	return &Client{Redis: redisClient, config: config}
}

// Key builds the cache key for one career's contract projection, scoped
// by world_version so a mutation invalidates the cache implicitly
// without an explicit Delete.
func (c *Client) Key(careerID string, worldVersion int) string {
	return fmt.Sprintf("managerspelet:%s:contract:%s:v%d", c.config.Version, careerID, worldVersion)
}

func addJitter(ttl time.Duration) time.Duration {
	jitterPercent := 0.1
	jitter := time.Duration(float64(ttl) * jitterPercent * (rand.Float64()*2 - 1))
	return ttl + jitter
}

// Get retrieves a value from cache and unmarshals it into dest. Returns
// true if found; cache failures are non-fatal and treated as a miss.
func (c *Client) Get(ctx context.Context, key string, dest any) bool {
	if !c.config.Enabled || c.Redis == nil {
		return false
	}
	data, err := c.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores a value in cache with jittered TTL.
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !c.config.Enabled || c.Redis == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return c.Redis.Set(ctx, key, data, addJitter(ttl)).Err()
}

// Delete removes a key from cache.
func (c *Client) Delete(ctx context.Context, key string) error {
	if !c.config.Enabled || c.Redis == nil {
		return nil
	}
	return c.Redis.Del(ctx, key).Err()
}

// GetOrCompute implements cache-aside with singleflight: a cache miss
// computes once per key even under concurrent callers, then stores the
// result.
func (c *Client) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() (any, error)) (any, error) {
	if !c.config.Enabled || c.Redis == nil {
		return compute()
	}

	var result any
	if c.Get(ctx, key, &result) {
		return result, nil
	}

	val, err, _ := c.sf.Do(key, func() (any, error) {
		if c.Get(ctx, key, &result) {
			return result, nil
		}
		computed, err := compute()
		if err != nil {
			return nil, err
		}
		_ = c.Set(ctx, key, computed, ttl)
		return computed, nil
	})
	return val, err
}
