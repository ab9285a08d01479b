package component

import "go-path-defense/pkg/geom"

// Enemy представляет вражескую сущность. Records are recycled by entity.Pool.
type Enemy struct {
	Type      string
	Position  geom.Vec2
	Health    int
	MaxHealth int
	Speed     float64 // distance units per tick
	Reward    int
	PathIndex int // index of the waypoint the enemy last reached
	MapName   string
}

// Reset clears a recycled record back to its zero state.
func (e *Enemy) Reset() {
	*e = Enemy{}
}

func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// HealthFraction is Health/MaxHealth clamped to [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 || e.Health <= 0 {
		return 0
	}
	f := float64(e.Health) / float64(e.MaxHealth)
	if f > 1 {
		return 1
	}
	return f
}
