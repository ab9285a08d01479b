// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/system"
	"go-path-defense/internal/utils"

	"github.com/google/uuid"
)

// Options tune a Simulation. Zero fields take the config defaults.
type Options struct {
	StartingCash   int
	Seed           int64 // 0 - от текущего времени
	SpawnStagger   float64
	EffectDuration float64
	Placement      system.PlacementRules
}

func DefaultOptions() Options {
	return Options{
		StartingCash:   config.StartingCash,
		SpawnStagger:   config.SpawnStagger,
		EffectDuration: config.ShotEffectDuration,
		Placement:      system.DefaultPlacementRules(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.StartingCash <= 0 {
		o.StartingCash = d.StartingCash
	}
	if o.SpawnStagger <= 0 {
		o.SpawnStagger = d.SpawnStagger
	}
	if o.EffectDuration <= 0 {
		o.EffectDuration = d.EffectDuration
	}
	if o.Placement == (system.PlacementRules{}) {
		o.Placement = d.Placement
	}
	return o
}

// Simulation holds the whole game: entities, systems, timers and the clock.
// Everything runs on the caller's goroutine; it is not safe for concurrent use.
type Simulation struct {
	Catalog            *defs.Catalog
	Registry           *entity.Registry
	EventDispatcher    *event.Dispatcher
	Timers             *system.TimerQueue
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem

	opts        Options
	path        defs.MapPath
	sessionID   uuid.UUID
	tick        uint64
	accumulator float64
}

// NewSimulation wires the systems around catalog. Call StartGame before ticking.
func NewSimulation(catalog *defs.Catalog, opts Options) *Simulation {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	opts = opts.withDefaults()

	reg := entity.NewRegistry()
	dispatcher := event.NewDispatcher()
	s := &Simulation{
		Catalog:         catalog,
		Registry:        reg,
		EventDispatcher: dispatcher,
		Timers:          system.NewTimerQueue(),
		Rng:             utils.NewPRNGService(opts.Seed),
		opts:            opts,
	}
	s.MovementSystem = system.NewMovementSystem(reg, catalog, dispatcher)
	s.VisualEffectSystem = system.NewVisualEffectSystem(reg, s.Rng, opts.EffectDuration)
	s.CombatSystem = system.NewCombatSystem(reg, dispatcher, s.VisualEffectSystem, s.addCash)
	s.WaveSystem = system.NewWaveSystem(reg, s.Timers, dispatcher, s.spawnEnemy, opts.SpawnStagger)

	dispatcher.Subscribe(&gameEventListener{sim: s}, event.EnemyKilled, event.EnemyEscaped, event.WaveCleared)
	return s
}

// gameEventListener пишет в лог итоги волн и потери.
type gameEventListener struct {
	sim *Simulation
}

func (l *gameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyEscaped:
		if data, ok := e.Data.(event.EnemyData); ok {
			logging.Debugf("Enemy %s escaped at (%.0f, %.0f)", data.Type, data.Position.X, data.Position.Y)
		}
	case event.EnemyKilled:
		logging.Tracef("Enemy killed, cash %d", l.sim.Registry.State.Cash)
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveData); ok {
			logging.Infof("Wave %d cleared at %.2fs, cash %d", data.Number, e.Time, l.sim.Registry.State.Cash)
		}
	}
}

// StartGame resets all state and begins a new game on mapName. Wave 1 is
// prepared by the first tick.
func (s *Simulation) StartGame(mapName string) error {
	path, ok := s.Catalog.Map(mapName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMap, mapName)
	}

	s.Registry.Reset()
	s.Timers.Clear()
	s.tick = 0
	s.accumulator = 0
	s.path = path
	s.sessionID = uuid.New()
	s.Registry.State = component.GameState{
		Cash:    s.opts.StartingCash,
		MapName: mapName,
		Started: true,
	}
	s.WaveSystem.Reset()

	logging.Infof("Game %s started on map %s with %d cash", s.sessionID, mapName, s.opts.StartingCash)
	s.dispatch(event.GameStarted, event.GameStartedData{
		SessionID: s.sessionID,
		MapName:   mapName,
		Cash:      s.opts.StartingCash,
	})
	return nil
}

// Tick feeds wall-clock time into the fixed-step clock and returns the number
// of steps run. Deltas are clamped to config.MaxDeltaTime. Nothing accumulates
// while paused or before StartGame.
func (s *Simulation) Tick(deltaTime float64) int {
	if !s.Running() || math.IsNaN(deltaTime) || deltaTime <= 0 {
		return 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	s.accumulator += deltaTime

	steps := 0
	for s.accumulator+config.TimeEpsilon >= config.TickDuration {
		s.accumulator -= config.TickDuration
		s.Step()
		steps++
	}
	if s.accumulator < 0 {
		s.accumulator = 0
	}
	return steps
}

// Step advances the simulation by exactly one tick: due spawn timers, then
// movement, combat and the wave check.
func (s *Simulation) Step() {
	if !s.Running() {
		return
	}
	s.tick++
	s.Registry.GameTime = float64(s.tick) * config.TickDuration

	s.Timers.Drain(s.Registry.GameTime)

	s.MovementSystem.Update()
	if s.Registry.LiveCount() == 0 {
		s.WaveSystem.OnFieldCleared()
	}

	s.CombatSystem.Update(config.TickDuration)
	if s.Registry.LiveCount() == 0 {
		s.WaveSystem.OnFieldCleared()
	}

	s.WaveSystem.CheckAndPrepareNextWave()
	s.VisualEffectSystem.Update()
}

// TogglePause flips the pause flag. Simulation time stops while paused, so
// pending spawns are deferred rather than dropped.
func (s *Simulation) TogglePause() error {
	st := &s.Registry.State
	if !st.Started {
		return ErrNotStarted
	}
	st.Paused = !st.Paused
	if st.Paused {
		s.accumulator = 0
	}
	logging.Infof("Paused: %t", st.Paused)
	s.dispatch(event.PauseToggled, event.PauseData{Paused: st.Paused})
	return nil
}

// Running is true once a game is started and not paused.
func (s *Simulation) Running() bool {
	return s.Registry.State.Started && !s.Registry.State.Paused
}

func (s *Simulation) Paused() bool { return s.Registry.State.Paused }

func (s *Simulation) Cash() int { return s.Registry.State.Cash }

func (s *Simulation) SessionID() uuid.UUID { return s.sessionID }

// TickCount is the number of steps run since StartGame.
func (s *Simulation) TickCount() uint64 { return s.tick }

func (s *Simulation) GameTime() float64 { return s.Registry.GameTime }

// Path is the current map's path; zero before StartGame.
func (s *Simulation) Path() defs.MapPath { return s.path }

// spawnEnemy puts one enemy of enemyType at the start of the current map.
// Missing data is logged and the spawn is skipped.
func (s *Simulation) spawnEnemy(enemyType string) bool {
	mapName := s.Registry.State.MapName
	def, ok := s.Catalog.Enemy(enemyType)
	if !ok {
		s.skipSpawn(enemyType, mapName, "unknown enemy type")
		return false
	}
	path, ok := s.Catalog.Map(mapName)
	if !ok {
		s.skipSpawn(enemyType, mapName, "unknown map")
		return false
	}

	_, enemy := s.Registry.Spawn()
	*enemy = component.Enemy{
		Type:      def.ID,
		Position:  path.Start(),
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Reward:    def.Reward,
		MapName:   mapName,
	}
	s.dispatch(event.EnemySpawned, event.EnemyData{Type: def.ID, Position: enemy.Position, Reward: def.Reward})
	return true
}

func (s *Simulation) skipSpawn(enemyType, mapName, reason string) {
	logging.Warnf("Cannot spawn %q on map %q: %s", enemyType, mapName, reason)
	s.dispatch(event.SpawnSkipped, event.SpawnSkippedData{EnemyType: enemyType, MapName: mapName, Reason: reason})
}

// addCash is the only place cash changes; delta may be negative.
func (s *Simulation) addCash(delta int) {
	if delta == 0 {
		return
	}
	s.Registry.State.Cash += delta
	s.dispatch(event.CashChanged, event.CashData{Cash: s.Registry.State.Cash, Delta: delta})
}

func (s *Simulation) dispatch(t event.EventType, data interface{}) {
	s.EventDispatcher.Dispatch(event.Event{Type: t, Time: s.Registry.GameTime, Data: data})
}
