// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState - выбор карты перед началом игры.
type MenuState struct {
	sm       *StateMachine
	sim      *app.Simulation
	face     font.Face
	maps     []string
	selected int
}

func NewMenuState(sm *StateMachine, sim *app.Simulation, face font.Face) *MenuState {
	return &MenuState{sm: sm, sim: sim, face: face, maps: sim.Catalog.MapNames()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if len(m.maps) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		m.selected = (m.selected + 1) % len(m.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		m.selected = (m.selected + len(m.maps) - 1) % len(m.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := m.sim.StartGame(m.maps[m.selected]); err != nil {
			logging.Errorf("Cannot start game: %v", err)
			return
		}
		m.sm.SetState(NewGameState(m.sm, m.sim, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	x, y := config.ScreenWidth/2-80, config.ScreenHeight/3
	text.Draw(screen, "Choose a map (Enter to start)", m.face, x, y, config.TextLightColor)
	for i, name := range m.maps {
		y += 20
		label := "  " + name
		if i == m.selected {
			label = fmt.Sprintf("> %s", name)
		}
		text.Draw(screen, label, m.face, x, y, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
