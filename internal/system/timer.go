package system

import (
	"container/heap"

	"go-path-defense/internal/config"
)

// TimerQueue is a logical timer queue keyed on simulation time. Timers fire
// only from Drain, on the tick's goroutine, ordered by fire time and then by
// scheduling order.
type TimerQueue struct {
	items timerHeap
	seq   uint64
}

type timer struct {
	at  float64
	seq uint64
	fn  func()
}

func NewTimerQueue() *TimerQueue {
	return &TimerQueue{}
}

// Schedule queues fn to run at simulation time at.
func (q *TimerQueue) Schedule(at float64, fn func()) {
	q.seq++
	heap.Push(&q.items, &timer{at: at, seq: q.seq, fn: fn})
}

// Drain runs every timer due at now, including ones scheduled by callbacks
// that are themselves due. Returns how many fired.
func (q *TimerQueue) Drain(now float64) int {
	fired := 0
	for q.items.Len() > 0 && q.items[0].at <= now+config.TimeEpsilon {
		t := heap.Pop(&q.items).(*timer)
		t.fn()
		fired++
	}
	return fired
}

func (q *TimerQueue) Len() int { return q.items.Len() }

// NextAt is the fire time of the earliest pending timer.
func (q *TimerQueue) NextAt() (float64, bool) {
	if q.items.Len() == 0 {
		return 0, false
	}
	return q.items[0].at, true
}

// Clear drops all pending timers without running them.
func (q *TimerQueue) Clear() {
	q.items = q.items[:0]
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
