package render

import (
	"image/color"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/pkg/geom"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws a simulation snapshot: the path, turrets, enemies and shot effects.
type FieldRenderer struct {
	screenWidth  int
	screenHeight int
	colors       FieldColors
	pathImage    *ebiten.Image // предрендеренный фон с путём
	pathMap      string
}

func NewFieldRenderer(screenWidth, screenHeight int, colors FieldColors) *FieldRenderer {
	return &FieldRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		pathImage:    ebiten.NewImage(screenWidth, screenHeight),
	}
}

// RenderPathImage redraws the cached background for a map.
func (r *FieldRenderer) RenderPathImage(mapName string, path []geom.Vec2) {
	r.pathImage.Clear()
	r.pathImage.Fill(r.colors.BackgroundColor)
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		vector.StrokeLine(r.pathImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			r.colors.PathStrokeWidth, r.colors.PathColor, true)
	}
	r.pathMap = mapName
}

// Draw renders snap; the turret with id selected gets its range drawn.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, selected uuid.UUID) {
	if snap.MapName != r.pathMap {
		r.RenderPathImage(snap.MapName, snap.Path)
	}
	screen.DrawImage(r.pathImage, nil)

	for _, t := range snap.Turrets {
		r.drawTurret(screen, t, t.ID == selected)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, fx := range snap.Effects {
		left := 1.0
		if fx.Duration > 0 {
			left = 1 - (snap.Time-fx.StartTime)/fx.Duration
		}
		clr := FadeColor(fx.Color, left)
		vector.StrokeLine(screen, float32(fx.From.X), float32(fx.From.Y), float32(fx.To.X), float32(fx.To.Y),
			r.colors.EffectStrokeWidth, clr, true)
	}
}

func (r *FieldRenderer) drawTurret(screen *ebiten.Image, t app.TurretView, selected bool) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	clr := r.colors.turret(t.Type)
	vector.DrawFilledCircle(screen, x, y, config.TurretRadius, clr, true)
	vector.StrokeCircle(screen, x, y, config.TurretRadius, 2, DarkenColor(clr), true)
	if selected {
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, r.colors.SelectedColor, true)
		vector.StrokeCircle(screen, x, y, config.TurretRadius+3, 2, r.colors.SelectedColor, true)
	}
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, r.colors.enemy(e.Type), true)

	barX := x - config.HealthBarWidth/2
	barY := y - config.EnemyRadius - config.HealthBarHeight - 2
	vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, r.colors.HealthBarBack, false)
	vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth*float32(e.HealthFraction), config.HealthBarHeight, r.colors.HealthBarFront, false)
}

// DrawPlacementPreview shows where a pending turret would go and its range.
func (r *FieldRenderer) DrawPlacementPreview(screen *ebiten.Image, x, y int, turretRange float64, valid bool) {
	var clr color.RGBA = r.colors.InvalidPreview
	if valid {
		clr = r.colors.ValidPreview
	}
	fx, fy := float32(x), float32(y)
	vector.StrokeCircle(screen, fx, fy, config.TurretRadius, 2, clr, true)
	vector.StrokeCircle(screen, fx, fy, float32(turretRange), 1, FadeColor(clr, 0.5), true)
}
