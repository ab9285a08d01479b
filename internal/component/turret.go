// internal/component/turret.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"

	"github.com/google/uuid"
)

// UpgradeLevels - текущий уровень улучшения по каждой характеристике (0..3).
type UpgradeLevels struct {
	Range  int
	Rate   int
	Damage int
}

// Get returns the level of attr; unknown attributes report 0.
func (l UpgradeLevels) Get(attr defs.Attribute) int {
	switch attr {
	case defs.AttrRange:
		return l.Range
	case defs.AttrRate:
		return l.Rate
	case defs.AttrDamage:
		return l.Damage
	}
	return 0
}

func (l *UpgradeLevels) set(attr defs.Attribute, level int) {
	switch attr {
	case defs.AttrRange:
		l.Range = level
	case defs.AttrRate:
		l.Rate = level
	case defs.AttrDamage:
		l.Damage = level
	}
}

// Turret is a placed turret. Turrets are never removed once placed.
type Turret struct {
	ID       uuid.UUID
	Type     string
	Position geom.Vec2
	Range    float64
	Rate     float64 // выстрелов в секунду
	Damage   int
	Levels   UpgradeLevels

	TimeSinceLastShot float64
}

// NewTurret builds a turret with base stats from its definition.
func NewTurret(def defs.TurretDefinition, pos geom.Vec2) *Turret {
	return &Turret{
		ID:       uuid.New(),
		Type:     def.ID,
		Position: pos,
		Range:    def.Range,
		Rate:     def.Rate,
		Damage:   def.Damage,
	}
}

// Cooldown is the minimum simulated time between two shots.
func (t *Turret) Cooldown() float64 {
	if t.Rate <= 0 {
		return 0
	}
	return 1 / t.Rate
}

// ApplyTier sets attr to the tier's absolute value and bumps its level.
func (t *Turret) ApplyTier(attr defs.Attribute, tier defs.UpgradeTier) {
	switch attr {
	case defs.AttrRange:
		t.Range = tier.Value
	case defs.AttrRate:
		t.Rate = tier.Value
	case defs.AttrDamage:
		t.Damage = int(tier.Value)
	default:
		return
	}
	t.Levels.set(attr, t.Levels.Get(attr)+1)
}
