package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemaphore_AcquireRelease(t *testing.T) {
	s := NewSemaphore(2)

	assert.True(t, s.Acquire())
	assert.True(t, s.Acquire())
	assert.False(t, s.Acquire())
	assert.Equal(t, 2, s.Current())

	s.Release()
	assert.Equal(t, 1, s.Current())
	assert.True(t, s.Acquire())
}

func TestSemaphore_ReleaseWhenEmpty(t *testing.T) {
	s := NewSemaphore(1)
	s.Release()
	assert.Equal(t, 0, s.Current())
	assert.Equal(t, 1, s.Capacity())
}

func TestSemaphore_NonPositiveCapacity(t *testing.T) {
	s := NewSemaphore(0)
	assert.Equal(t, 1, s.Capacity())
}
