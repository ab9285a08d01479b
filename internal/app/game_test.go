package app

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.SetLevel(logging.ERROR)
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// newTestSimulation starts a game on a straight 100-unit "Line" map.
func newTestSimulation(t *testing.T, opts Options) (*Simulation, *eventLog) {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	require.NoError(t, err)
	require.NoError(t, catalog.AddMap("Line", []geom.Vec2{geom.V(0, 300), geom.V(100, 300)}))

	sim := NewSimulation(catalog, opts)
	log := &eventLog{}
	sim.EventDispatcher.SubscribeAll(log)
	require.NoError(t, sim.StartGame("Line"))
	return sim, log
}

func TestStartGame(t *testing.T) {
	sim, log := newTestSimulation(t, Options{Seed: 1})

	snap := sim.Snapshot()
	assert.True(t, snap.Started)
	assert.Equal(t, config.StartingCash, snap.Cash)
	assert.Equal(t, 1, snap.Wave)
	assert.Equal(t, component.WaveUnprepared, snap.Phase)
	assert.Equal(t, []geom.Vec2{geom.V(0, 300), geom.V(100, 300)}, snap.Path)
	assert.Equal(t, 1, log.count(event.GameStarted))

	err := sim.StartGame("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownMap)
	assert.Equal(t, "Line", sim.Snapshot().MapName, "failed start keeps the running game")
}

func TestStep_FirstTickPreparesWaveOne(t *testing.T) {
	sim, log := newTestSimulation(t, Options{Seed: 1})

	sim.Step()
	assert.Equal(t, component.WavePreparing, sim.Snapshot().Phase)
	assert.Equal(t, 1, log.count(event.WavePrepared))

	for i := 0; i < 10; i++ {
		sim.Step()
	}
	assert.Equal(t, 1, log.count(event.WavePrepared), "no re-preparation while spawning")
	assert.Equal(t, 1, log.count(event.EnemySpawned))
}

func TestTick_FixedStepAccumulator(t *testing.T) {
	sim, _ := newTestSimulation(t, Options{Seed: 1})

	assert.Equal(t, 15, sim.Tick(config.MaxDeltaTime))
	assert.Equal(t, 15, sim.Tick(config.MaxDeltaTime))
	assert.Equal(t, uint64(30), sim.TickCount())
	assert.InDelta(t, 0.5, sim.GameTime(), 1e-9)

	// большие дельты обрезаются
	assert.Equal(t, 15, sim.Tick(0.5))
	assert.Equal(t, 15, sim.Tick(10))
	assert.Equal(t, 0, sim.Tick(-1))

	steps := sim.Tick(config.TickDuration / 2)
	steps += sim.Tick(config.TickDuration / 2)
	assert.Equal(t, 1, steps)
}

func TestTick_NothingBeforeStart(t *testing.T) {
	sim := NewSimulation(defs.MustDefaultCatalog(), Options{})
	assert.Equal(t, 0, sim.Tick(1))
	sim.Step()
	assert.Equal(t, uint64(0), sim.TickCount())
	assert.ErrorIs(t, sim.TogglePause(), ErrNotStarted)
	assert.ErrorIs(t, sim.PurchaseTurret("basic"), ErrNotStarted)
}

func TestPause_FreezesEverything(t *testing.T) {
	sim, log := newTestSimulation(t, Options{Seed: 1})
	sim.Tick(0.25)
	before := sim.Snapshot()
	require.NotEmpty(t, before.Enemies)

	require.NoError(t, sim.TogglePause())
	assert.True(t, sim.Paused())
	assert.Equal(t, 0, sim.Tick(0.25))
	sim.Step()

	after := sim.Snapshot()
	assert.Equal(t, before.Tick, after.Tick)
	assert.Equal(t, before.Enemies, after.Enemies)
	assert.Equal(t, 1, log.count(event.PauseToggled))

	// отложенные появления не теряются
	require.NoError(t, sim.TogglePause())
	for i := 0; i < 6*config.TickRate; i++ {
		sim.Step()
	}
	assert.Equal(t, defs.TotalEnemies(1), log.count(event.EnemySpawned))
}

func TestEndToEnd_EscapeGrantsNothing(t *testing.T) {
	sim, log := newTestSimulation(t, Options{Seed: 1})

	// basic: скорость 1 за тик, путь длиной 100
	for i := 0; i < 110; i++ {
		sim.Step()
	}

	assert.GreaterOrEqual(t, log.count(event.EnemyEscaped), 1)
	assert.Equal(t, 0, log.count(event.EnemyKilled))
	assert.Equal(t, 100, sim.Cash())
	assert.Equal(t, 0, log.count(event.CashChanged))
}

func TestEndToEnd_WaveAdvancesAfterAllEscape(t *testing.T) {
	sim, log := newTestSimulation(t, Options{Seed: 1})

	// 6 врагов с интервалом 1 с, каждый проходит путь за 100 тиков
	for i := 0; i < 8*config.TickRate; i++ {
		sim.Step()
	}

	assert.Equal(t, 6, log.count(event.EnemyEscaped))
	assert.Equal(t, 1, log.count(event.WaveCleared))
	snap := sim.Snapshot()
	assert.Equal(t, 2, snap.Wave)
	assert.Equal(t, component.WavePreparing, snap.Phase)
}

func TestEndToEnd_KillsPayRewards(t *testing.T) {
	sim, log := newTestSimulation(t, Options{Seed: 1})
	// sniper стреляет 25 раз в секунду по 50 урона
	require.NoError(t, sim.PurchaseTurret("sniper"))
	assert.Equal(t, 0, sim.Cash())
	_, err := sim.PlaceTurret(50, 350)
	require.NoError(t, err)

	for i := 0; i < 8*config.TickRate; i++ {
		sim.Step()
	}

	kills := log.count(event.EnemyKilled)
	require.Greater(t, kills, 0)
	assert.Equal(t, 0, log.count(event.EnemyEscaped))
	assert.Equal(t, kills*20, sim.Cash())
	assert.Equal(t, kills+log.count(event.EnemyEscaped), log.count(event.EnemySpawned)-len(sim.Snapshot().Enemies))
	assert.Greater(t, log.count(event.ShotFired), 0)
}

func TestSnapshot_IsACopy(t *testing.T) {
	sim, _ := newTestSimulation(t, Options{Seed: 1})
	sim.Tick(0.1)

	snap := sim.Snapshot()
	require.Len(t, snap.Enemies, 1)
	snap.Enemies[0].Position = geom.V(-1, -1)
	snap.Path[0] = geom.V(-1, -1)

	fresh := sim.Snapshot()
	assert.NotEqual(t, geom.V(-1, -1), fresh.Enemies[0].Position)
	assert.Equal(t, geom.V(0, 300), fresh.Path[0])
	assert.Equal(t, 1.0, fresh.Enemies[0].HealthFraction)
}

func TestTick_NonFiniteDeltaIgnored(t *testing.T) {
	sim, _ := newTestSimulation(t, Options{Seed: 1})

	assert.Equal(t, 0, sim.Tick(math.NaN()))
	assert.Equal(t, uint64(0), sim.TickCount())

	// часы не сломаны
	assert.Equal(t, 15, sim.Tick(config.MaxDeltaTime))
	assert.Equal(t, uint64(15), sim.TickCount())
	assert.InDelta(t, config.MaxDeltaTime, sim.GameTime(), 1e-9)

	assert.Equal(t, 15, sim.Tick(math.Inf(1)), "+Inf is clamped like any large delta")
	assert.Equal(t, 0, sim.Tick(math.Inf(-1)))
}
