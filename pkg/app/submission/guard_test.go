package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocker struct {
	err      error
	acquired []string
	released int
}

func (s *stubLocker) Acquire(_ context.Context, key string) (func(), error) {
	if s.err != nil {
		return nil, s.err
	}
	s.acquired = append(s.acquired, key)
	return func() { s.released++ }, nil
}

func TestGuard_OnePerUser(t *testing.T) {
	g := NewGuard(nil)

	release, err := g.Acquire(context.Background(), "u1")
	require.NoError(t, err)

	_, err = g.Acquire(context.Background(), "u1")
	assert.ErrorIs(t, err, moderation.ErrSubmissionInProgress)

	other, err := g.Acquire(context.Background(), "u2")
	require.NoError(t, err)
	other()

	release()
	again, err := g.Acquire(context.Background(), "u1")
	require.NoError(t, err)
	again()
}

func TestGuard_DistributedLock(t *testing.T) {
	locker := &stubLocker{}
	g := NewGuard(locker)

	release, err := g.Acquire(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"submission:u1"}, locker.acquired)
	release()
	assert.Equal(t, 1, locker.released)

	locker.err = cache.ErrLockHeld
	_, err = g.Acquire(context.Background(), "u1")
	assert.ErrorIs(t, err, moderation.ErrSubmissionInProgress)

	locker.err = errors.New("redis down")
	_, err = g.Acquire(context.Background(), "u1")
	assert.EqualError(t, err, "redis down")

	locker.err = nil
	release, err = g.Acquire(context.Background(), "u1")
	require.NoError(t, err, "local slot is freed after a remote failure")
	release()
}
