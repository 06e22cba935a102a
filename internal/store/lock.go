package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/apell0/managerspelet/internal/core"
)

// CareerLock is an advisory, Redis-backed mutex around one career's
// persisting mutations (spec §5): a service call that mutates and saves a
// world holds the lock for the duration of with_world(persist=true) so two
// concurrent callers against the same career id can't interleave writes.
// Without Redis configured it degrades to a no-op (single-process use is
// already serialized by Go's own call stack).
type CareerLock struct {
	redis   *redis.Client
	limiter *redis_rate.Limiter
	ttl     time.Duration
}

// NewCareerLock builds a CareerLock. A nil redis client makes every
// operation a no-op.
func NewCareerLock(redisClient *redis.Client) *CareerLock {
	var limiter *redis_rate.Limiter
	if redisClient != nil {
		limiter = redis_rate.NewLimiter(redisClient)
	}
	return &CareerLock{redis: redisClient, limiter: limiter, ttl: 10 * time.Second}
}

func lockKey(careerID string) string {
	return fmt.Sprintf("managerspelet:lock:career:%s", careerID)
}

// Acquire blocks (with simple retry/backoff) until it holds the advisory
// lock for careerID. It gives up with a StateConflict error once 5
// seconds pass, or with ctx's error if ctx is cancelled first. It returns
// a release token; the caller must call Release with it.
func (l *CareerLock) Acquire(ctx context.Context, careerID string) (string, error) {
	if l.redis == nil {
		return "", nil
	}

	// Advisory rate limit: at most one persisting mutation per career per
	// second gets past the gate without waiting, which keeps a runaway
	// retry loop from hammering Redis while it waits for the lock.
	res, err := l.limiter.Allow(ctx, "career-persist:"+careerID, redis_rate.PerSecond(1))
	if err != nil {
		return "", fmt.Errorf("failed to check career lock rate limit: %w", err)
	}
	if res.Allowed == 0 && res.RetryAfter > 0 {
		time.Sleep(res.RetryAfter)
	}

	token := uuid.NewString()
	key := lockKey(careerID)
	deadline := time.Now().Add(5 * time.Second)
	for {
		ok, err := l.redis.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return "", fmt.Errorf("failed to acquire career lock: %w", err)
		}
		if ok {
			return token, nil
		}
		if time.Now().After(deadline) {
			return "", core.NewStateConflictError("lock career", "career is locked by another session")
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// Release drops the advisory lock, but only if token still matches (so a
// caller never releases a lock another holder has since re-acquired after
// this one's TTL expired).
func (l *CareerLock) Release(ctx context.Context, careerID, token string) error {
	if l.redis == nil {
		return nil
	}
	key := lockKey(careerID)
	current, err := l.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read career lock: %w", err)
	}
	if current != token {
		return nil
	}
	if err := l.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release career lock: %w", err)
	}
	return nil
}
