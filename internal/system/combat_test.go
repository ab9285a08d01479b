package system

import (
	"testing"

	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type combatFixture struct {
	reg    *entity.Registry
	rec    *recorder
	combat *CombatSystem
	cash   int
}

func newCombatFixture() *combatFixture {
	f := &combatFixture{reg: entity.NewRegistry()}
	d, rec := newDispatcher()
	f.rec = rec
	fx := NewVisualEffectSystem(f.reg, utils.NewPRNGService(1), config.ShotEffectDuration)
	f.combat = NewCombatSystem(f.reg, d, fx, func(reward int) { f.cash += reward })
	return f
}

func TestCombat_RateLimited(t *testing.T) {
	f := newCombatFixture()
	f.reg.AddTurret(newTurret(geom.V(0, 0), 100, 2, 1))
	spawnEnemy(f.reg, "Line", geom.V(50, 0), 1000, 0, 0)

	for tick := 1; tick <= 120; tick++ {
		f.reg.GameTime = float64(tick) * config.TickDuration
		f.combat.Update(config.TickDuration)
		if tick == 29 {
			assert.Equal(t, 0, f.rec.count(event.ShotFired))
		}
	}
	// 2 выстрела в секунду: тики 30, 60, 90, 120
	assert.Equal(t, 4, f.rec.count(event.ShotFired))

	e, ok := f.reg.Enemy(f.reg.Live[0])
	require.True(t, ok)
	assert.Equal(t, 996, e.Health)
	assert.Len(t, f.reg.Effects, 4)
}

func TestCombat_KeepsChargeWithoutTarget(t *testing.T) {
	f := newCombatFixture()
	turret := newTurret(geom.V(0, 0), 100, 1, 10)
	f.reg.AddTurret(turret)

	f.combat.Update(5)
	assert.Equal(t, 0, f.rec.count(event.ShotFired))

	spawnEnemy(f.reg, "Line", geom.V(10, 0), 100, 0, 0)
	f.combat.Update(config.TickDuration)
	assert.Equal(t, 1, f.rec.count(event.ShotFired))
	assert.Equal(t, 0.0, turret.TimeSinceLastShot)
}

func TestCombat_RangeIsStrict(t *testing.T) {
	f := newCombatFixture()
	turret := newTurret(geom.V(0, 0), 100, 1, 10)
	f.reg.AddTurret(turret)
	spawnEnemy(f.reg, "Line", geom.V(100, 0), 100, 0, 0)

	_, _, ok := f.combat.FindClosestEnemy(turret)
	assert.False(t, ok)

	spawnEnemy(f.reg, "Line", geom.V(99.9, 0), 100, 0, 0)
	_, e, ok := f.combat.FindClosestEnemy(turret)
	require.True(t, ok)
	assert.Equal(t, 99.9, e.Position.X)
}

func TestCombat_TieGoesToEarlierSpawn(t *testing.T) {
	f := newCombatFixture()
	turret := newTurret(geom.V(0, 0), 100, 1, 10)
	f.reg.AddTurret(turret)
	first := spawnEnemy(f.reg, "Line", geom.V(-40, 0), 100, 0, 0)
	spawnEnemy(f.reg, "Line", geom.V(40, 0), 100, 0, 0)
	spawnEnemy(f.reg, "Line", geom.V(0, 60), 100, 0, 0)

	h, _, ok := f.combat.FindClosestEnemy(turret)
	require.True(t, ok)
	assert.Equal(t, first, h)
}

func TestCombat_RewardCreditedOnce(t *testing.T) {
	f := newCombatFixture()
	for _, pos := range []geom.Vec2{geom.V(0, 0), geom.V(60, 0)} {
		turret := newTurret(pos, 100, 1, 25)
		turret.TimeSinceLastShot = turret.Cooldown()
		f.reg.AddTurret(turret)
	}
	spawnEnemy(f.reg, "Line", geom.V(30, 0), 25, 0, 20)

	f.combat.Update(0)

	assert.Equal(t, 20, f.cash)
	assert.Equal(t, 1, f.rec.count(event.ShotFired), "second turret has no target left")
	assert.Equal(t, 1, f.rec.count(event.EnemyKilled))
	assert.Equal(t, 0, f.reg.LiveCount())
	assert.Equal(t, 0, f.reg.Pool.InUse())
}

func TestApplyDamage_ClampsAtZero(t *testing.T) {
	reg := entity.NewRegistry()
	h := spawnEnemy(reg, "Line", geom.V(0, 0), 30, 0, 0)
	e, _ := reg.Enemy(h)

	ApplyDamage(e, 50)
	assert.Equal(t, 0, e.Health)
	assert.False(t, e.Alive())

	e.Health = 10
	ApplyDamage(e, -5)
	assert.Equal(t, 10, e.Health)
}
