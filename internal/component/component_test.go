package component

import (
	"testing"

	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestEnemy_HealthFraction(t *testing.T) {
	e := Enemy{Health: 25, MaxHealth: 100}
	assert.Equal(t, 0.25, e.HealthFraction())

	e.Health = -10
	assert.Equal(t, 0.0, e.HealthFraction())
	assert.False(t, e.Alive())

	e.Reset()
	assert.Equal(t, Enemy{}, e)
}

func TestTurret_ApplyTier(t *testing.T) {
	def := defs.TurretDefinition{ID: "basic", Range: 100, Rate: 2, Damage: 25}
	tr := NewTurret(def, geom.V(10, 20))

	assert.Equal(t, "basic", tr.Type)
	assert.Equal(t, 0.5, tr.Cooldown())

	tr.ApplyTier(defs.AttrRange, defs.UpgradeTier{Cost: 50, Value: 150})
	tr.ApplyTier(defs.AttrDamage, defs.UpgradeTier{Cost: 150, Value: 30})

	assert.Equal(t, 150.0, tr.Range)
	assert.Equal(t, 30, tr.Damage)
	assert.Equal(t, UpgradeLevels{Range: 1, Damage: 1}, tr.Levels)
	assert.Equal(t, 1, tr.Levels.Get(defs.AttrRange))
}

func TestVisualEffect_Expired(t *testing.T) {
	fx := VisualEffect{StartTime: 1.0, Duration: 0.1}
	assert.False(t, fx.Expired(1.05))
	assert.True(t, fx.Expired(1.2))
}
