package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const lockKeyPattern = "lock:%s"

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var ErrLockHeld = errors.New("lock already held")

// Locker hands out per-key exclusive leases backed by SET NX.
type Locker struct {
	redis        *redis.Client
	ttl          time.Duration
	uuidProvider func() uuid.UUID
}

func NewLocker(redisClient *redis.Client, ttl time.Duration, uuidProvider func() uuid.UUID) *Locker {
	if uuidProvider == nil {
		uuidProvider = uuid.New
	}
	return &Locker{redis: redisClient, ttl: ttl, uuidProvider: uuidProvider}
}

// Acquire takes the lease for key or returns ErrLockHeld. The returned func
// releases it; the lease also expires after the locker ttl.
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := fmt.Sprintf(lockKeyPattern, key)
	token := l.uuidProvider().String()

	ok, err := l.redis.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.redis, []string{lockKey}, token).Err()
	}, nil
}
