package entity

import "go-path-defense/internal/component"

// Handle refers to a pooled enemy record. A handle goes stale as soon as its
// record is released; stale handles are rejected by the pool instead of
// aliasing whatever record reuses the slot.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero handle, which never refers to a record.
func (h Handle) IsZero() bool {
	return h.generation == 0
}

type slot struct {
	enemy      component.Enemy
	generation uint32
	inUse      bool
}

// Pool is an arena of enemy records with a free-list. Acquire and Release are O(1)
// and do not allocate once the arena has grown to the peak live count.
type Pool struct {
	slots []*slot
	free  []uint32
	inUse int
}

// NewPool pre-allocates capacity records.
func NewPool(capacity int) *Pool {
	p := &Pool{
		slots: make([]*slot, 0, capacity),
		free:  make([]uint32, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		p.slots = append(p.slots, &slot{})
		p.free = append(p.free, uint32(capacity-1-i))
	}
	return p
}

// Acquire pops a recycled record or grows the arena. The returned record is zeroed.
func (p *Pool) Acquire() (Handle, *component.Enemy) {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, &slot{})
	}

	s := p.slots[idx]
	s.generation++
	if s.generation == 0 { // переполнение: 0 зарезервирован за нулевым хэндлом
		s.generation = 1
	}
	s.inUse = true
	s.enemy.Reset()
	p.inUse++
	return Handle{index: idx, generation: s.generation}, &s.enemy
}

// Release returns the record to the pool. False means h was stale or zero.
func (p *Pool) Release(h Handle) bool {
	s := p.lookup(h)
	if s == nil {
		return false
	}
	s.inUse = false
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	p.free = append(p.free, h.index)
	p.inUse--
	return true
}

// Get resolves a live handle.
func (p *Pool) Get(h Handle) (*component.Enemy, bool) {
	s := p.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.enemy, true
}

func (p *Pool) lookup(h Handle) *slot {
	if h.IsZero() || int(h.index) >= len(p.slots) {
		return nil
	}
	s := p.slots[h.index]
	if !s.inUse || s.generation != h.generation {
		return nil
	}
	return s
}

// InUse is the number of acquired records.
func (p *Pool) InUse() int { return p.inUse }

// Capacity is the number of records ever allocated.
func (p *Pool) Capacity() int { return len(p.slots) }

// Free is the number of records ready for reuse.
func (p *Pool) Free() int { return len(p.free) }
