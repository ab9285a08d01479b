// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	buttonWidth    = 170
	buttonHeight   = 36
	buttonSpacing  = 12
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect      image.Rectangle
	Text      string
	Attribute defs.Attribute
	Enabled   bool
}

// InfoPanel shows the selected turret's stats and its upgrade buttons.
type InfoPanel struct {
	IsVisible bool
	Target    uuid.UUID
	fontFace  font.Face
	currentY  float64
	targetY   float64
	Buttons   []Button
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(id uuid.UUID) {
	p.Target = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether (x, y) is over the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update animates the panel and refreshes its buttons from the simulation.
func (p *InfoPanel) Update(sim *app.Simulation) {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.Target = uuid.Nil
		}
	}

	p.Buttons = p.Buttons[:0]
	if p.Target == uuid.Nil {
		return
	}
	options, err := sim.UpgradeOptions(p.Target)
	if err != nil {
		p.Hide()
		return
	}
	top := int(p.currentY) + panelHeight - buttonHeight - 15
	for i, opt := range options {
		left := config.ScreenWidth - panelMargin - 15 - (len(options)-i)*(buttonWidth+buttonSpacing)
		label := fmt.Sprintf("%s %d/%d", opt.Attribute, opt.Level, opt.MaxLevel)
		if !opt.Maxed {
			label = fmt.Sprintf("%s -> %v ($%d)", opt.Attribute, opt.NextValue, opt.NextCost)
		}
		p.Buttons = append(p.Buttons, Button{
			Rect:      image.Rect(left, top, left+buttonWidth, top+buttonHeight),
			Text:      label,
			Attribute: opt.Attribute,
			Enabled:   !opt.Maxed && opt.Affordable,
		})
	}
}

// ButtonAt returns the upgrade attribute under (x, y).
func (p *InfoPanel) ButtonAt(x, y int) (defs.Attribute, bool) {
	pt := image.Pt(x, y)
	for _, b := range p.Buttons {
		if pt.In(b.Rect) {
			return b.Attribute, true
		}
	}
	return "", false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	for _, t := range snap.Turrets {
		if t.ID == p.Target {
			p.drawTurretInfo(screen, t, panelRect.Min.X+15, panelRect.Min.Y+20)
			break
		}
	}
	for _, b := range p.Buttons {
		p.drawButton(screen, b)
	}
}

func (p *InfoPanel) drawTurretInfo(screen *ebiten.Image, t app.TurretView, x, y int) {
	text.Draw(screen, fmt.Sprintf("%s turret", t.Type), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %d", t.Damage), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", t.Rate), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", t.Range), p.fontFace, x, y, config.TextLightColor)
}

func (p *InfoPanel) drawButton(screen *ebiten.Image, b Button) {
	btnColor := color.RGBA{R: 60, G: 120, B: 60, A: 255}
	if !b.Enabled {
		btnColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y), float32(b.Rect.Dx()), float32(b.Rect.Dy()), btnColor, true)

	textBounds := text.BoundString(p.fontFace, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-textBounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, b.Text, p.fontFace, textX, textY, color.White)
}
