package submission

import (
	"context"
	"errors"
	"sync"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache"
)

// Locker is the cross-instance lease used on top of the local guard.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// Guard allows one in-flight submission per user. Different users never
// contend.
type Guard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
	locker   Locker
}

// NewGuard returns a guard; locker may be nil for a single instance.
func NewGuard(locker Locker) *Guard {
	return &Guard{inFlight: make(map[string]struct{}), locker: locker}
}

func (g *Guard) Acquire(ctx context.Context, userID string) (func(), error) {
	g.mu.Lock()
	if _, busy := g.inFlight[userID]; busy {
		g.mu.Unlock()
		return nil, moderation.ErrSubmissionInProgress
	}
	g.inFlight[userID] = struct{}{}
	g.mu.Unlock()

	releaseLocal := func() {
		g.mu.Lock()
		delete(g.inFlight, userID)
		g.mu.Unlock()
	}

	if g.locker == nil {
		return releaseLocal, nil
	}
	releaseRemote, err := g.locker.Acquire(ctx, "submission:"+userID)
	if err != nil {
		releaseLocal()
		if errors.Is(err, cache.ErrLockHeld) {
			return nil, moderation.ErrSubmissionInProgress
		}
		return nil, err
	}
	return func() {
		releaseRemote()
		releaseLocal()
	}, nil
}
