package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/apell0/managerspelet/internal/cache"
	"github.com/apell0/managerspelet/internal/config"
	"github.com/apell0/managerspelet/internal/world"
)

// CareerManager is the top-level handle the service layer holds: it picks
// the configured CareerStore backend(s), wraps persisting mutations in the
// advisory career lock, and exposes the cache client for contract
// projections (SPEC_FULL.md §11).
type CareerManager struct {
	Store     CareerStore
	Secondary CareerStore // set only when Backend == "dual": a second store written alongside Store
	Lock      *CareerLock
	Cache     *cache.Client
}

// NewCareerManager wires a CareerManager from loaded configuration:
// jsonstore, pgstore, or both ("dual", see Save's errgroup
// write) per cfg.Store.Backend, and an optional Redis client shared by the
// lock and the cache if cfg.Redis.URL is set.
func NewCareerManager(ctx context.Context, cfg *config.Config) (*CareerManager, error) {
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	js, err := NewJSONStore(cfg.Store.SaveDir)
	if err != nil {
		return nil, err
	}

	var st CareerStore = js
	var secondary CareerStore
	switch cfg.Store.Backend {
	case "postgres":
		pg, err := NewPGStore(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		st = pg
	case "dual":
		pg, err := NewPGStore(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		secondary = pg
	}

	cacheConfig := cache.Config{
		Version: cfg.Cache.Version,
		Enabled: cfg.Cache.Enabled && redisClient != nil,
		TTL:     time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	}

	return &CareerManager{
		Store:     st,
		Secondary: secondary,
		Lock:      NewCareerLock(redisClient),
		Cache:     cache.NewClient(redisClient, cacheConfig),
	}, nil
}

// Careers lists every saved career id.
func (m *CareerManager) Careers(ctx context.Context) ([]string, error) {
	return m.Store.List(ctx)
}

// Save persists w to the primary store and, when configured for dual-write,
// concurrently to the secondary store via errgroup: either both writes
// succeed or the caller sees an error (SPEC_FULL.md §11). This is the only
// place in the repository concurrency runs — never inside the
// single-threaded simulation engine.
func (m *CareerManager) Save(ctx context.Context, careerID string, w *world.GameState) error {
	if m.Secondary == nil {
		return m.Store.Save(ctx, careerID, w)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.Store.Save(gctx, careerID, w) })
	g.Go(func() error { return m.Secondary.Save(gctx, careerID, w) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("dual-write save failed: %w", err)
	}
	return nil
}
