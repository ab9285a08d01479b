package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type waveFixture struct {
	reg     *entity.Registry
	timers  *TimerQueue
	rec     *recorder
	waves   *WaveSystem
	spawned []string
	fail    bool
}

func newWaveFixture() *waveFixture {
	f := &waveFixture{reg: entity.NewRegistry(), timers: NewTimerQueue()}
	d, rec := newDispatcher()
	f.rec = rec
	f.waves = NewWaveSystem(f.reg, f.timers, d, func(enemyType string) bool {
		if f.fail {
			return false
		}
		f.spawned = append(f.spawned, enemyType)
		h := spawnEnemy(f.reg, "Line", geom.V(0, 0), 100, 1, 10)
		e, _ := f.reg.Enemy(h)
		e.Type = enemyType
		return true
	}, 1.0)
	f.waves.Reset()
	return f
}

func (f *waveFixture) clearField() {
	for _, h := range f.reg.LiveHandles() {
		f.reg.Despawn(h)
	}
}

func TestWave_FullCycle(t *testing.T) {
	f := newWaveFixture()

	require.True(t, f.waves.CheckAndPrepareNextWave())
	assert.Equal(t, component.WavePreparing, f.waves.State().Phase)
	assert.Equal(t, 6, f.timers.Len())

	f.timers.Drain(0)
	assert.Len(t, f.spawned, 1)
	assert.Equal(t, component.WavePreparing, f.waves.State().Phase)

	f.timers.Drain(5)
	assert.Len(t, f.spawned, 6)
	state := f.waves.State()
	assert.Equal(t, component.WaveInProgress, state.Phase)
	assert.Equal(t, 1, state.LastPrepared)
	assert.Equal(t, 1, f.rec.count(event.WaveStarted))

	// враги ещё на поле
	assert.False(t, f.waves.CheckAndPrepareNextWave())
	f.waves.OnFieldCleared()
	assert.Equal(t, 0, f.rec.count(event.WaveCleared))

	f.clearField()
	f.waves.OnFieldCleared()
	state = f.waves.State()
	assert.Equal(t, 1, f.rec.count(event.WaveCleared))
	assert.Equal(t, 2, state.Number)
	assert.Equal(t, component.WavePreparing, state.Phase, "next wave is prepared right away")
	assert.Equal(t, 2, f.rec.count(event.WavePrepared))
}

func TestWave_PrepareIsIdempotent(t *testing.T) {
	f := newWaveFixture()

	require.True(t, f.waves.PrepareWave(1))
	assert.False(t, f.waves.PrepareWave(1))
	assert.False(t, f.waves.CheckAndPrepareNextWave())
	assert.False(t, f.waves.PrepareWave(2), "another wave is preparing")
	assert.Equal(t, 6, f.timers.Len())
	assert.Equal(t, 1, f.rec.count(event.WavePrepared))
}

func TestWave_GroupsStaggerInParallel(t *testing.T) {
	f := newWaveFixture()
	require.True(t, f.waves.PrepareWave(3)) // 9 basic, 3 fast

	f.timers.Drain(0)
	assert.Equal(t, []string{"basic", "fast"}, f.spawned)

	f.timers.Drain(2)
	assert.Len(t, f.spawned, 6)

	f.timers.Drain(2.5)
	assert.Len(t, f.spawned, 6)

	f.timers.Drain(8)
	assert.Len(t, f.spawned, 12)
	assert.Equal(t, component.WaveInProgress, f.waves.State().Phase)
}

func TestWave_AllSpawnsSkippedAdvancesOnce(t *testing.T) {
	f := newWaveFixture()
	f.fail = true

	require.True(t, f.waves.CheckAndPrepareNextWave())
	f.reg.GameTime = 5
	f.timers.Drain(5)

	state := f.waves.State()
	assert.Equal(t, 2, state.Number)
	assert.Equal(t, 1, state.LastPrepared)
	assert.Equal(t, component.WavePreparing, state.Phase)
	assert.Equal(t, 1, f.rec.count(event.WaveCleared))

	// повторная проверка в том же тике ничего не меняет
	assert.False(t, f.waves.CheckAndPrepareNextWave())
	f.waves.OnFieldCleared()
	assert.Equal(t, 2, f.waves.State().Number)
}

func TestWave_StaleTimersIgnoredAfterReset(t *testing.T) {
	f := newWaveFixture()
	require.True(t, f.waves.PrepareWave(1))

	f.waves.Reset()
	f.timers.Drain(10)

	assert.Empty(t, f.spawned)
	assert.Equal(t, component.WaveUnprepared, f.waves.State().Phase)
}
