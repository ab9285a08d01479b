// internal/state/game_state.go
package state

import (
	"errors"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/render"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// GameState - состояние игры: ввод игрока, тик симуляции и отрисовка.
type GameState struct {
	sm          *StateMachine
	sim         *app.Simulation
	face        font.Face
	renderer    *render.FieldRenderer
	hud         *ui.HUD
	infoPanel   *ui.InfoPanel
	pauseButton *ui.PauseButton
	selected    uuid.UUID
}

func NewGameState(sm *StateMachine, sim *app.Simulation, face font.Face) *GameState {
	colors := render.FieldColors{
		BackgroundColor:   config.BackgroundColor,
		PathColor:         config.PathColor,
		HealthBarBack:     config.HealthBarBack,
		HealthBarFront:    config.HealthBarFront,
		SelectedColor:     config.SelectedColor,
		ValidPreview:      config.ValidPreviewColor,
		InvalidPreview:    config.InvalidPreview,
		FallbackColor:     config.FallbackColor,
		TurretColors:      config.TurretColors,
		EnemyColors:       config.EnemyColors,
		PathStrokeWidth:   config.PathStrokeWidth,
		EffectStrokeWidth: config.EffectStrokeWidth,
	}
	return &GameState{
		sm:          sm,
		sim:         sim,
		face:        face,
		renderer:    render.NewFieldRenderer(config.ScreenWidth, config.ScreenHeight, colors),
		hud:         ui.NewHUD(face, config.TextLightColor, sim.Catalog, config.ScreenWidth),
		infoPanel:   ui.NewInfoPanel(face),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-30, 30, 12, config.TextLightColor, config.ValidPreviewColor),
	}
}

func (g *GameState) Enter() {}

var digitKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.Push(NewPauseState(g.sm, g, g.face))
		return
	}

	for i, key := range digitKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if id, ok := g.hud.ShopItem(i + 1); ok {
			g.report(g.sim.PurchaseTurret(id))
		}
	}

	// быстрые клавиши улучшений выбранной турели
	for key, attr := range map[ebiten.Key]defs.Attribute{
		ebiten.KeyQ: defs.AttrRange,
		ebiten.KeyW: defs.AttrRate,
		ebiten.KeyE: defs.AttrDamage,
	} {
		if g.selected != uuid.Nil && inpututil.IsKeyJustPressed(key) {
			g.report(g.sim.UpgradeTurret(g.selected, attr))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(x, y) {
			g.sm.Push(NewPauseState(g.sm, g, g.face))
			return
		}
		g.handleLeftClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if _, pending := g.sim.PendingSelection(); pending {
			g.report(g.sim.CancelPurchase())
		} else {
			g.selected = uuid.Nil
			g.infoPanel.Hide()
		}
	}

	g.sim.Tick(deltaTime)
	g.infoPanel.Update(g.sim)
}

func (g *GameState) handleLeftClick(x, y int) {
	if g.infoPanel.Contains(x, y) {
		if attr, ok := g.infoPanel.ButtonAt(x, y); ok {
			g.report(g.sim.UpgradeTurret(g.selected, attr))
		}
		return
	}

	fx, fy := float64(x), float64(y)
	if _, pending := g.sim.PendingSelection(); pending {
		id, err := g.sim.PlaceTurret(fx, fy)
		g.report(err)
		if err == nil {
			g.selectTurret(id)
		}
		return
	}

	if t, ok := g.sim.TurretAt(fx, fy); ok {
		g.selectTurret(t.ID)
		return
	}
	g.selected = uuid.Nil
	g.infoPanel.Hide()
}

func (g *GameState) selectTurret(id uuid.UUID) {
	g.selected = id
	g.infoPanel.SetTarget(id)
}

// report показывает причину отказа команды в HUD.
func (g *GameState) report(err error) {
	switch {
	case err == nil:
		g.hud.SetMessage("")
	case errors.Is(err, app.ErrInvalidPlacement):
		g.hud.SetMessage("Can't place here")
	default:
		g.hud.SetMessage(err.Error())
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	g.renderer.Draw(screen, snap, g.selected)

	if pending, ok := g.sim.PendingSelection(); ok {
		if def, ok := g.sim.Catalog.Turret(pending); ok {
			x, y := ebiten.CursorPosition()
			g.renderer.DrawPlacementPreview(screen, x, y, def.Range, g.sim.IsValidPlacement(float64(x), float64(y)))
		}
	}

	g.hud.Draw(screen, snap)
	g.infoPanel.Draw(screen, snap)
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
