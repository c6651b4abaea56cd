package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPattern = "ratelimit:%s:%s"

type Status struct {
	Exceeded   bool
	Count      int64
	Limit      int
	Window     time.Duration
	RetryAfter time.Duration
}

func (s Status) Remaining() int64 {
	if r := int64(s.Limit) - s.Count; r > 0 {
		return r
	}
	return 0
}

//go:generate mockery --name=Limiter --dir=. --output=./mocks --filename=limiter_mock.go --case=underscore --with-expecter

// Limiter is a per-user sliding-window counter. Check and Record are separate
// calls, so two concurrent submissions can both pass Check; the limit is a
// soft deterrent, not a quota.
type Limiter interface {
	Check(ctx context.Context, action, userID string) (Status, error)
	Record(ctx context.Context, action, userID string) error
}

type Opts struct {
	TimeProvider func() time.Time
	UuidProvider func() uuid.UUID
}

type redisLimiter struct {
	redis        *redis.Client
	limit        int
	window       time.Duration
	timeProvider func() time.Time
	uuidProvider func() uuid.UUID
}

func NewRedisLimiter(redisClient *redis.Client, limit int, window time.Duration, opts *Opts) Limiter {
	timeProvider := time.Now
	uuidProvider := uuid.New
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}
	return &redisLimiter{
		redis:        redisClient,
		limit:        limit,
		window:       window,
		timeProvider: timeProvider,
		uuidProvider: uuidProvider,
	}
}

func (r *redisLimiter) Check(ctx context.Context, action, userID string) (Status, error) {
	key := fmt.Sprintf(keyPattern, action, userID)
	now := r.timeProvider()
	windowStart := now.Add(-r.window).Unix()

	count, err := r.redis.ZCount(ctx, key,
		strconv.FormatInt(windowStart, 10),
		strconv.FormatInt(now.Unix(), 10)).Result()
	if err != nil {
		return Status{}, fmt.Errorf("failed to get count for %s: %w", key, err)
	}

	status := Status{
		Count:  count,
		Limit:  r.limit,
		Window: r.window,
	}
	if count < int64(r.limit) {
		return status, nil
	}
	status.Exceeded = true
	status.RetryAfter = r.window

	oldest, err := r.redis.ZRangeByScoreWithScores(ctx, key, &redis.ZRangeBy{
		Min:   strconv.FormatInt(windowStart, 10),
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: 1,
	}).Result()
	if err == nil && len(oldest) > 0 {
		expires := time.Unix(int64(oldest[0].Score), 0).Add(r.window)
		if d := expires.Sub(now); d > 0 {
			status.RetryAfter = d
		}
	}
	return status, nil
}

func (r *redisLimiter) Record(ctx context.Context, action, userID string) error {
	key := fmt.Sprintf(keyPattern, action, userID)
	now := r.timeProvider()
	windowStart := now.Add(-r.window).Unix()
	member := fmt.Sprintf("%d:%s", now.Unix(), r.uuidProvider().String())

	pipe := r.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(now.Unix()),
		Member: member,
	})
	pipe.Expire(ctx, key, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}
	return nil
}

// Noop never limits. It backs deployments with rate limiting disabled.
type Noop struct{}

func (Noop) Check(context.Context, string, string) (Status, error) { return Status{}, nil }

func (Noop) Record(context.Context, string, string) error { return nil }
