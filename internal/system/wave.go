// internal/system/wave.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
)

// SpawnFunc creates one enemy of the given type; false means the spawn was skipped.
type SpawnFunc func(enemyType string) bool

// WaveSystem paces spawns and moves wave numbers through
// UNPREPARED -> PREPARING -> IN_PROGRESS -> CLEARED -> next UNPREPARED.
type WaveSystem struct {
	reg        *entity.Registry
	timers     *TimerQueue
	dispatcher *event.Dispatcher
	spawn      SpawnFunc
	stagger    float64
}

func NewWaveSystem(reg *entity.Registry, timers *TimerQueue, dispatcher *event.Dispatcher, spawn SpawnFunc, stagger float64) *WaveSystem {
	return &WaveSystem{
		reg:        reg,
		timers:     timers,
		dispatcher: dispatcher,
		spawn:      spawn,
		stagger:    stagger,
	}
}

// Reset puts the scheduler at wave 1, nothing prepared.
func (s *WaveSystem) Reset() {
	s.reg.Wave = component.WaveState{Number: 1, Phase: component.WaveUnprepared}
}

func (s *WaveSystem) State() component.WaveState {
	return s.reg.Wave
}

// PrepareWave schedules every enemy of wave n. Within a type group the i-th
// enemy spawns i*stagger seconds from now, so groups run side by side.
// Skipped (false) while another wave is preparing or in progress, or when n
// was already prepared.
func (s *WaveSystem) PrepareWave(n int) bool {
	w := &s.reg.Wave
	if w.Phase == component.WavePreparing || w.Phase == component.WaveInProgress || w.LastPrepared >= n {
		logging.Debugf("Skipping preparation for wave %d. Phase: %s, last prepared: %d", n, w.Phase, w.LastPrepared)
		return false
	}

	groups := defs.WaveConfig(n)
	total := 0
	for _, g := range groups {
		total += g.Count
	}

	w.Phase = component.WavePreparing
	w.Scheduled = total
	w.Fired = 0
	logging.Infof("Preparing wave %d: %d enemies", n, total)

	now := s.reg.GameTime
	for _, g := range groups {
		enemyType := g.EnemyID
		for i := 0; i < g.Count; i++ {
			s.timers.Schedule(now+float64(i)*s.stagger, func() {
				s.onSpawnTimer(n, enemyType)
			})
		}
	}

	s.dispatcher.Dispatch(event.Event{
		Type: event.WavePrepared,
		Time: now,
		Data: event.WaveData{Number: n, Enemies: total},
	})
	return true
}

func (s *WaveSystem) onSpawnTimer(n int, enemyType string) {
	w := &s.reg.Wave
	if w.Phase != component.WavePreparing {
		// таймер пережил сброс игры
		return
	}
	if !s.spawn(enemyType) {
		logging.Warnf("Spawn of %s for wave %d skipped", enemyType, n)
	}
	w.Fired++
	if w.Fired < w.Scheduled {
		return
	}

	w.Phase = component.WaveInProgress
	w.LastPrepared = n
	logging.Infof("All enemies for wave %d spawned", n)
	s.dispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Time: s.reg.GameTime,
		Data: event.WaveData{Number: n, Enemies: w.Scheduled},
	})

	if s.reg.LiveCount() == 0 {
		s.completeWave()
	}
}

// OnFieldCleared is called when the live set is empty; it completes an in-progress wave.
func (s *WaveSystem) OnFieldCleared() {
	if s.reg.Wave.Phase == component.WaveInProgress && s.reg.LiveCount() == 0 {
		s.completeWave()
	}
}

func (s *WaveSystem) completeWave() {
	w := &s.reg.Wave
	w.Phase = component.WaveCleared
	logging.Infof("Wave %d complete", w.Number)
	s.dispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Time: s.reg.GameTime,
		Data: event.WaveData{Number: w.Number, Enemies: w.Scheduled},
	})

	w.Number++
	w.Phase = component.WaveUnprepared
	w.Scheduled, w.Fired = 0, 0
	s.CheckAndPrepareNextWave()
}

// CheckAndPrepareNextWave prepares the current wave number when nothing is
// running, the field is empty and that number has not been prepared yet.
// Safe to call any number of times per tick.
func (s *WaveSystem) CheckAndPrepareNextWave() bool {
	w := &s.reg.Wave
	if w.Phase != component.WaveUnprepared || s.reg.LiveCount() != 0 || w.LastPrepared >= w.Number {
		logging.Tracef("Cannot transition to wave %d. Phase: %s, enemies left: %d, last prepared: %d",
			w.Number, w.Phase, s.reg.LiveCount(), w.LastPrepared)
		return false
	}
	logging.Debugf("Transitioning to wave %d", w.Number)
	return s.PrepareWave(w.Number)
}
