package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_AcquireRelease(t *testing.T) {
	p := NewPool(2)
	assert.Equal(t, 2, p.Capacity())
	assert.Equal(t, 2, p.Free())

	h1, e1 := p.Acquire()
	e1.Type = "basic"
	e1.Health = 100
	h2, _ := p.Acquire()
	h3, _ := p.Acquire() // арена растёт

	assert.Equal(t, 3, p.InUse())
	assert.Equal(t, 3, p.Capacity())
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, h2, h3)

	got, ok := p.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "basic", got.Type)

	assert.True(t, p.Release(h1))
	assert.Equal(t, 2, p.InUse())
	assert.Equal(t, 1, p.Free())
}

func TestPool_RecyclesRecordsWithoutGrowth(t *testing.T) {
	p := NewPool(1)
	for i := 0; i < 100; i++ {
		h, e := p.Acquire()
		e.Health = i
		require.True(t, p.Release(h))
	}
	assert.Equal(t, 1, p.Capacity())
	assert.Equal(t, 0, p.InUse())
}

func TestPool_StaleHandleRejected(t *testing.T) {
	p := NewPool(1)
	old, e := p.Acquire()
	e.Health = 50
	require.True(t, p.Release(old))

	fresh, reused := p.Acquire()
	assert.Equal(t, 0, reused.Health, "recycled record must be reset")

	_, ok := p.Get(old)
	assert.False(t, ok, "stale handle must not alias the reused slot")
	assert.False(t, p.Release(old), "double release must be rejected")

	_, ok = p.Get(fresh)
	assert.True(t, ok)
}

func TestPool_ZeroHandle(t *testing.T) {
	p := NewPool(0)
	var h Handle
	assert.True(t, h.IsZero())
	_, ok := p.Get(h)
	assert.False(t, ok)
	assert.False(t, p.Release(h))
}
