package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
)

// CombatSystem управляет стрельбой турелей.
type CombatSystem struct {
	reg        *entity.Registry
	dispatcher *event.Dispatcher
	effects    *VisualEffectSystem
	credit     func(reward int) // начисление награды за убийство
}

func NewCombatSystem(reg *entity.Registry, dispatcher *event.Dispatcher, effects *VisualEffectSystem, credit func(reward int)) *CombatSystem {
	return &CombatSystem{
		reg:        reg,
		dispatcher: dispatcher,
		effects:    effects,
		credit:     credit,
	}
}

// Update runs one tick of turret fire. A turret accumulates time and, once a
// full cooldown has passed, shoots the closest enemy strictly within range.
// Without a target the accumulated time is kept, so the turret fires as soon
// as something walks in. Killed enemies leave the live set immediately.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, turret := range s.reg.Turrets {
		turret.TimeSinceLastShot += deltaTime
		cooldown := turret.Cooldown()
		if cooldown <= 0 || turret.TimeSinceLastShot+config.TimeEpsilon < cooldown {
			continue
		}

		h, target, ok := s.FindClosestEnemy(turret)
		if !ok {
			continue
		}

		turret.TimeSinceLastShot = 0
		s.effects.Shoot(turret.Position, target.Position)
		s.dispatcher.Dispatch(event.Event{
			Type: event.ShotFired,
			Time: s.reg.GameTime,
			Data: event.ShotData{TurretID: turret.ID, From: turret.Position, To: target.Position, Damage: turret.Damage},
		})

		ApplyDamage(target, turret.Damage)
		if target.Alive() {
			continue
		}

		killed := event.EnemyData{Type: target.Type, Position: target.Position, Reward: target.Reward}
		if !s.reg.Despawn(h) {
			continue
		}
		s.credit(killed.Reward)
		logging.Debugf("Turret %s killed %s (+%d)", turret.Type, killed.Type, killed.Reward)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Time: s.reg.GameTime, Data: killed})
	}
}

// FindClosestEnemy returns the live enemy nearest to the turret with distance
// strictly below its range. On equal distance the one earlier in spawn order wins.
func (s *CombatSystem) FindClosestEnemy(turret *component.Turret) (entity.Handle, *component.Enemy, bool) {
	var (
		best      entity.Handle
		bestEnemy *component.Enemy
	)
	minDist := math.Inf(1)
	for _, h := range s.reg.Live {
		enemy, ok := s.reg.Enemy(h)
		if !ok || !enemy.Alive() {
			continue
		}
		dist := turret.Position.DistanceTo(enemy.Position)
		if dist < turret.Range && dist < minDist {
			best, bestEnemy, minDist = h, enemy, dist
		}
	}
	return best, bestEnemy, bestEnemy != nil
}
