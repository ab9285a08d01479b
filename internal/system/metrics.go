package system

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/event"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports simulation counters to Prometheus. It is an event listener,
// so the systems themselves never touch prometheus.
type Metrics struct {
	enemiesSpawned *prometheus.CounterVec
	enemiesKilled  *prometheus.CounterVec
	enemiesEscaped *prometheus.CounterVec
	spawnsSkipped  prometheus.Counter
	shotsFired     prometheus.Counter
	wavesCleared   prometheus.Counter
	turretsPlaced  *prometheus.CounterVec
	upgrades       *prometheus.CounterVec
	currentWave    prometheus.Gauge
	cash           prometheus.Gauge
	liveEnemies    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	ns := config.MetricsNamespace
	m := &Metrics{
		enemiesSpawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "enemies_spawned_total", Help: "Enemies spawned, by type.",
		}, []string{"type"}),
		enemiesKilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "enemies_killed_total", Help: "Enemies killed by turrets, by type.",
		}, []string{"type"}),
		enemiesEscaped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "enemies_escaped_total", Help: "Enemies that reached the end of the path, by type.",
		}, []string{"type"}),
		spawnsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Name: "spawns_skipped_total", Help: "Spawn attempts abandoned because of missing data.",
		}),
		shotsFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Name: "shots_fired_total", Help: "Turret shots.",
		}),
		wavesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Name: "waves_cleared_total", Help: "Waves whose enemies were all cleared.",
		}),
		turretsPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "turrets_placed_total", Help: "Turrets placed, by type.",
		}, []string{"type"}),
		upgrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "turret_upgrades_total", Help: "Upgrades bought, by attribute.",
		}, []string{"attribute"}),
		currentWave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "current_wave", Help: "Current wave number.",
		}),
		cash: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "cash", Help: "Player cash.",
		}),
		liveEnemies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "live_enemies", Help: "Enemies currently on the field.",
		}),
	}

	reg.MustRegister(
		m.enemiesSpawned, m.enemiesKilled, m.enemiesEscaped, m.spawnsSkipped, m.shotsFired,
		m.wavesCleared, m.turretsPlaced, m.upgrades, m.currentWave, m.cash, m.liveEnemies,
	)
	return m
}

// Attach subscribes the metrics to every event of d.
func (m *Metrics) Attach(d *event.Dispatcher) {
	d.SubscribeAll(m)
}

func (m *Metrics) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		if data, ok := e.Data.(event.GameStartedData); ok {
			m.cash.Set(float64(data.Cash))
		}
		m.currentWave.Set(1)
		m.liveEnemies.Set(0)
	case event.EnemySpawned:
		if data, ok := e.Data.(event.EnemyData); ok {
			m.enemiesSpawned.WithLabelValues(data.Type).Inc()
		}
		m.liveEnemies.Inc()
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyData); ok {
			m.enemiesKilled.WithLabelValues(data.Type).Inc()
		}
		m.liveEnemies.Dec()
	case event.EnemyEscaped:
		if data, ok := e.Data.(event.EnemyData); ok {
			m.enemiesEscaped.WithLabelValues(data.Type).Inc()
		}
		m.liveEnemies.Dec()
	case event.EnemyRemoved:
		m.liveEnemies.Dec()
	case event.SpawnSkipped:
		m.spawnsSkipped.Inc()
	case event.ShotFired:
		m.shotsFired.Inc()
	case event.WaveCleared:
		m.wavesCleared.Inc()
		if data, ok := e.Data.(event.WaveData); ok {
			m.currentWave.Set(float64(data.Number + 1))
		}
	case event.TurretPlaced:
		if data, ok := e.Data.(event.TurretData); ok {
			m.turretsPlaced.WithLabelValues(data.Type).Inc()
		}
	case event.TurretUpgraded:
		if data, ok := e.Data.(event.TurretData); ok {
			m.upgrades.WithLabelValues(string(data.Attribute)).Inc()
		}
	case event.CashChanged:
		if data, ok := e.Data.(event.CashData); ok {
			m.cash.Set(float64(data.Cash))
		}
	}
}
