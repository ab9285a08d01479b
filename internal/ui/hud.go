package ui

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const hudLineHeight = 16

// HUD draws cash, wave, the turret shop and the last rejected command.
type HUD struct {
	face      font.Face
	textColor color.RGBA
	wave      *WaveIndicator
	shop      []shopEntry
	message   string
}

type shopEntry struct {
	key  string
	id   string
	name string
	cost int
}

// NewHUD builds the shop list from the catalog; turret i is bought with key i+1.
func NewHUD(face font.Face, textColor color.RGBA, catalog *defs.Catalog, screenWidth int) *HUD {
	h := &HUD{
		face:      face,
		textColor: textColor,
		wave:      NewWaveIndicator(screenWidth/2, 20, face, textColor),
	}
	for i, id := range catalog.TurretIDs() {
		def, _ := catalog.Turret(id)
		name := def.Name
		if name == "" {
			name = id
		}
		h.shop = append(h.shop, shopEntry{key: fmt.Sprint(i + 1), id: id, name: name, cost: def.Cost})
	}
	return h
}

// ShopItem returns the turret type bought with digit key n (1-based).
func (h *HUD) ShopItem(n int) (string, bool) {
	if n < 1 || n > len(h.shop) {
		return "", false
	}
	return h.shop[n-1].id, true
}

// SetMessage shows msg until replaced; "" clears it.
func (h *HUD) SetMessage(msg string) {
	h.message = msg
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	x, y := 10, 20
	text.Draw(screen, fmt.Sprintf("Cash: %d", snap.Cash), h.face, x, y, h.textColor)
	y += hudLineHeight
	text.Draw(screen, fmt.Sprintf("Enemies: %d", len(snap.Enemies)), h.face, x, y, h.textColor)
	y += hudLineHeight
	if snap.Pending != "" {
		text.Draw(screen, "Placing: "+snap.Pending+" (right click to cancel)", h.face, x, y, h.textColor)
		y += hudLineHeight
	}

	y += hudLineHeight / 2
	for _, item := range h.shop {
		clr := h.textColor
		if snap.Cash < item.cost {
			clr = color.RGBA{140, 140, 140, 255}
		}
		text.Draw(screen, fmt.Sprintf("[%s] %s - %d", item.key, item.name, item.cost), h.face, x, y, clr)
		y += hudLineHeight
	}

	if h.message != "" {
		text.Draw(screen, h.message, h.face, x, y+hudLineHeight, color.RGBA{220, 60, 60, 255})
	}

	h.wave.Draw(screen, snap.Wave)
}
