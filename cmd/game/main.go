// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/state"
	"go-path-defense/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (default: $"+config.EnvConfigPath+")")
		mapName    = flag.String("map", "", "Map to start on; empty shows the map menu")
		headless   = flag.Bool("headless", false, "Run without a window and print a summary")
		ticks      = flag.Int("ticks", 60*config.TickRate, "Number of ticks for -headless")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.SetLevel(level)

	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		logging.Errorf("Cannot load catalog: %v", err)
		os.Exit(1)
	}

	sim := app.NewSimulation(catalog, app.Options{
		StartingCash: cfg.Game.StartingCash,
		Seed:         cfg.Game.Seed,
	})

	registry := prometheus.NewRegistry()
	system.NewMetrics(registry).Attach(sim.EventDispatcher)
	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, registry)
	}

	if *mapName == "" && *headless {
		*mapName = cfg.Game.Map
	}

	if *headless {
		if err := runHeadless(sim, *mapName, *ticks); err != nil {
			logging.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	face := basicfont.Face7x13
	sm := state.NewStateMachine()
	if *mapName != "" {
		if err := sim.StartGame(*mapName); err != nil {
			logging.Errorf("%v", err)
			os.Exit(1)
		}
		sm.SetState(state.NewGameState(sm, sim, face))
	} else {
		sm.SetState(state.NewMenuState(sm, sim, face))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.TickRate)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense")
	if err := ebiten.RunGame(game); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func loadCatalog(path string) (*defs.Catalog, error) {
	if path == "" {
		return defs.DefaultCatalog()
	}
	return defs.LoadCatalog(path)
}

// serveMetrics отдаёт /metrics и pprof (через DefaultServeMux).
func serveMetrics(addr string, registry *prometheus.Registry) {
	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logging.Infof("Metrics on http://%s/metrics", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logging.Errorf("Metrics server stopped: %v", err)
	}
}

// runHeadless plays n ticks with no input and prints where the game ended up.
func runHeadless(sim *app.Simulation, mapName string, n int) error {
	if err := sim.StartGame(mapName); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		sim.Step()
	}
	snap := sim.Snapshot()
	fmt.Printf("session %s: map=%s ticks=%d time=%.2fs wave=%d phase=%s cash=%d enemies=%d\n",
		sim.SessionID(), snap.MapName, snap.Tick, snap.Time, snap.Wave, snap.Phase, snap.Cash, len(snap.Enemies))
	return nil
}
