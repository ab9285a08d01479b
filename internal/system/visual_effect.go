// internal/system/visual_effect.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/geom"
)

// VisualEffectSystem создаёт и удаляет кратковременные эффекты для рендера.
type VisualEffectSystem struct {
	reg      *entity.Registry
	rng      *utils.PRNGService
	duration float64
}

func NewVisualEffectSystem(reg *entity.Registry, rng *utils.PRNGService, duration float64) *VisualEffectSystem {
	return &VisualEffectSystem{reg: reg, rng: rng, duration: duration}
}

// Shoot adds a line effect from a turret to its target in a random color.
func (s *VisualEffectSystem) Shoot(from, to geom.Vec2) {
	s.reg.Effects = append(s.reg.Effects, component.VisualEffect{
		Kind:      component.EffectShoot,
		From:      from,
		To:        to,
		Color:     s.rng.Color(),
		StartTime: s.reg.GameTime,
		Duration:  s.duration,
	})
}

// Update discards effects that have expired at the current game time.
func (s *VisualEffectSystem) Update() {
	kept := s.reg.Effects[:0]
	for _, fx := range s.reg.Effects {
		if !fx.Expired(s.reg.GameTime) {
			kept = append(kept, fx)
		}
	}
	for i := len(kept); i < len(s.reg.Effects); i++ {
		s.reg.Effects[i] = component.VisualEffect{}
	}
	s.reg.Effects = kept
}
