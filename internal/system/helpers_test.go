package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/geom"

	"github.com/stretchr/testify/require"
)

// recorder collects every dispatched event.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newDispatcher() (*event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec)
	return d, rec
}

func testCatalog(t *testing.T, maps map[string][]geom.Vec2) *defs.Catalog {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	require.NoError(t, err)
	for name, points := range maps {
		require.NoError(t, catalog.AddMap(name, points))
	}
	return catalog
}

func spawnEnemy(reg *entity.Registry, mapName string, pos geom.Vec2, health int, speed float64, reward int) entity.Handle {
	h, e := reg.Spawn()
	*e = component.Enemy{
		Type:      defs.EnemyBasic,
		Position:  pos,
		Health:    health,
		MaxHealth: health,
		Speed:     speed,
		Reward:    reward,
		MapName:   mapName,
	}
	return h
}

func newTurret(pos geom.Vec2, rng, rate float64, damage int) *component.Turret {
	return component.NewTurret(defs.TurretDefinition{
		ID:     "basic",
		Range:  rng,
		Rate:   rate,
		Damage: damage,
	}, pos)
}
