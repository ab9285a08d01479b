// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"

	"github.com/google/uuid"
)

const defaultPoolCapacity = 64

// Registry owns every mutable entity of one simulation: pooled enemies in spawn
// order, placed turrets and transient effects.
type Registry struct {
	GameTime float64
	Pool     *Pool
	Live     []Handle // порядок появления, важен для выбора цели
	Turrets  []*component.Turret
	Effects  []component.VisualEffect
	Wave     component.WaveState
	State    component.GameState
}

func NewRegistry() *Registry {
	return &Registry{
		Pool: NewPool(defaultPoolCapacity),
		Live: make([]Handle, 0, defaultPoolCapacity),
	}
}

// Spawn acquires a record and appends it to the live list.
func (r *Registry) Spawn() (Handle, *component.Enemy) {
	h, e := r.Pool.Acquire()
	r.Live = append(r.Live, h)
	return h, e
}

// Despawn removes h from the live list (keeping order) and releases it to the pool.
func (r *Registry) Despawn(h Handle) bool {
	for i, live := range r.Live {
		if live == h {
			r.Live = append(r.Live[:i], r.Live[i+1:]...)
			return r.Pool.Release(h)
		}
	}
	return false
}

// Enemy resolves a live handle.
func (r *Registry) Enemy(h Handle) (*component.Enemy, bool) {
	return r.Pool.Get(h)
}

func (r *Registry) LiveCount() int {
	return len(r.Live)
}

// LiveHandles returns a copy of the live list, safe to range over while despawning.
func (r *Registry) LiveHandles() []Handle {
	out := make([]Handle, len(r.Live))
	copy(out, r.Live)
	return out
}

func (r *Registry) AddTurret(t *component.Turret) {
	r.Turrets = append(r.Turrets, t)
}

func (r *Registry) Turret(id uuid.UUID) (*component.Turret, bool) {
	for _, t := range r.Turrets {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Reset releases all enemies and clears turrets, effects and state. The pool keeps its records.
func (r *Registry) Reset() {
	for _, h := range r.Live {
		r.Pool.Release(h)
	}
	r.Live = r.Live[:0]
	r.Turrets = nil
	r.Effects = nil
	r.GameTime = 0
	r.Wave = component.WaveState{}
	r.State = component.GameState{}
}
