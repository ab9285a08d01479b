// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
)

// MovementSystem обновляет позиции врагов вдоль пути карты.
type MovementSystem struct {
	reg        *entity.Registry
	catalog    *defs.Catalog
	dispatcher *event.Dispatcher
}

func NewMovementSystem(reg *entity.Registry, catalog *defs.Catalog, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{reg: reg, catalog: catalog, dispatcher: dispatcher}
}

// Update advances every live enemy by one tick, then removes the dead ones.
// Returns the number of enemies that escaped this tick.
func (s *MovementSystem) Update() int {
	escaped := 0
	var dead []entity.Handle

	for _, h := range s.reg.Live {
		enemy, ok := s.reg.Enemy(h)
		if !ok {
			continue
		}
		if enemy.Alive() {
			path, ok := s.catalog.Map(enemy.MapName)
			if !ok {
				logging.Warnf("Enemy %s walks unknown map %q, removing", enemy.Type, enemy.MapName)
				enemy.Health = 0
				s.dispatcher.Dispatch(event.Event{
					Type: event.EnemyRemoved,
					Time: s.reg.GameTime,
					Data: event.EnemyRemovedData{Type: enemy.Type, MapName: enemy.MapName, Reason: "unknown map"},
				})
			} else if Advance(enemy, path) {
				escaped++
				s.dispatcher.Dispatch(event.Event{
					Type: event.EnemyEscaped,
					Time: s.reg.GameTime,
					Data: event.EnemyData{Type: enemy.Type, Position: enemy.Position},
				})
			}
		}
		if !enemy.Alive() {
			dead = append(dead, h)
		}
	}

	for _, h := range dead {
		s.reg.Despawn(h)
	}
	if len(dead) > 0 {
		logging.Tracef("Removed %d enemies, %d remaining", len(dead), s.reg.LiveCount())
	}
	return escaped
}

// Advance moves e one tick along path. Speed is distance per tick; if the next
// waypoint is within reach the enemy snaps onto it and the leftover distance is
// dropped, so a segment of length L takes exactly ceil(L/speed) ticks and the
// position never overshoots. Zero-length segments are skipped instantly.
// Reaching the final waypoint forces health to 0 and returns true (escape).
func Advance(e *component.Enemy, path defs.MapPath) bool {
	for e.PathIndex < path.LastIndex() {
		from, to := path.Segment(e.PathIndex)
		if from == to {
			e.PathIndex++
			e.Position = to
			continue
		}

		remaining := e.Position.DistanceTo(to)
		if remaining <= e.Speed+config.TimeEpsilon {
			e.Position = to
			e.PathIndex++
			break
		}

		dir := to.Sub(from).Normalized()
		e.Position = e.Position.Add(dir.Mul(e.Speed))
		return false
	}

	if e.PathIndex >= path.LastIndex() {
		e.PathIndex = path.LastIndex()
		e.Health = 0
		return true
	}
	return false
}
