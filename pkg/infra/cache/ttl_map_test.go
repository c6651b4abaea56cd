package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_Expiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewTTLMap[string](time.Minute)
	m.now = func() time.Time { return now }

	m.Set("a", "one")
	m.Set("b", "two")
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	now = now.Add(2 * time.Minute)
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	assert.Equal(t, 1, m.Sweep())
	assert.Zero(t, m.Len())
}

func TestTTLMap_Delete(t *testing.T) {
	m := NewTTLMap[int](time.Minute)
	m.Set("k", 7)
	m.Delete("k")
	_, ok := m.Get("k")
	assert.False(t, ok)
}
