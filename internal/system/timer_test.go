package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerQueue_FiresInTimeThenScheduleOrder(t *testing.T) {
	q := NewTimerQueue()
	var order []string
	q.Schedule(2, func() { order = append(order, "c") })
	q.Schedule(1, func() { order = append(order, "a") })
	q.Schedule(1, func() { order = append(order, "b") })

	assert.Equal(t, 0, q.Drain(0.5))
	assert.Equal(t, 2, q.Drain(1))
	assert.Equal(t, []string{"a", "b"}, order)

	next, ok := q.NextAt()
	assert.True(t, ok)
	assert.Equal(t, 2.0, next)

	assert.Equal(t, 1, q.Drain(5))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, q.Len())
}

func TestTimerQueue_CallbackSchedulingDueTimer(t *testing.T) {
	q := NewTimerQueue()
	fired := 0
	q.Schedule(1, func() {
		fired++
		q.Schedule(1, func() { fired++ }) // уже наступил - сработает в этом же Drain
		q.Schedule(3, func() { fired++ })
	})

	assert.Equal(t, 2, q.Drain(1))
	assert.Equal(t, 2, fired)
	assert.Equal(t, 1, q.Len())
}

func TestTimerQueue_ToleratesFloatDrift(t *testing.T) {
	q := NewTimerQueue()
	fired := false
	q.Schedule(1.0, func() { fired = true })

	now := 0.0
	for i := 0; i < 60; i++ {
		now += 1.0 / 60
	}
	q.Drain(now)
	assert.True(t, fired)
}

func TestTimerQueue_Clear(t *testing.T) {
	q := NewTimerQueue()
	q.Schedule(0, func() { t.Fatal("cleared timer must not run") })
	q.Clear()
	assert.Equal(t, 0, q.Drain(10))
}
