package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/pkg/geom"

	"github.com/google/uuid"
)

// EnemyView is the read-only view of one live enemy.
type EnemyView struct {
	Type           string
	Position       geom.Vec2
	HealthFraction float64
}

type TurretView struct {
	ID       uuid.UUID
	Type     string
	Position geom.Vec2
	Range    float64
	Rate     float64
	Damage   int
	Levels   component.UpgradeLevels
}

// Snapshot is a copy of everything a presentation layer needs for one frame.
// Mutating it does not affect the simulation.
type Snapshot struct {
	Tick    uint64
	Time    float64
	Cash    int
	Wave    int
	Phase   component.WavePhase
	Paused  bool
	Started bool
	Pending string
	MapName string
	Path    []geom.Vec2
	Enemies []EnemyView
	Turrets []TurretView
	Effects []component.VisualEffect
}

func (s *Simulation) Snapshot() Snapshot {
	reg := s.Registry
	snap := Snapshot{
		Tick:    s.tick,
		Time:    reg.GameTime,
		Cash:    reg.State.Cash,
		Wave:    reg.Wave.Number,
		Phase:   reg.Wave.Phase,
		Paused:  reg.State.Paused,
		Started: reg.State.Started,
		Pending: reg.State.Pending,
		MapName: reg.State.MapName,
		Enemies: make([]EnemyView, 0, reg.LiveCount()),
		Turrets: make([]TurretView, 0, len(reg.Turrets)),
		Effects: append([]component.VisualEffect(nil), reg.Effects...),
	}
	if reg.State.Started {
		snap.Path = s.path.Waypoints()
	}

	for _, h := range reg.Live {
		e, ok := reg.Enemy(h)
		if !ok {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			Type:           e.Type,
			Position:       e.Position,
			HealthFraction: e.HealthFraction(),
		})
	}
	for _, t := range reg.Turrets {
		snap.Turrets = append(snap.Turrets, TurretView{
			ID:       t.ID,
			Type:     t.Type,
			Position: t.Position,
			Range:    t.Range,
			Rate:     t.Rate,
			Damage:   t.Damage,
			Levels:   t.Levels,
		})
	}
	return snap
}
