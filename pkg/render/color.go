// pkg/render/color.go
package render

import (
	"image/color"

	"go-path-defense/internal/utils"
)

// FieldColors holds all the color definitions needed to render the play field.
type FieldColors struct {
	BackgroundColor   color.RGBA
	PathColor         color.RGBA
	HealthBarBack     color.RGBA
	HealthBarFront    color.RGBA
	SelectedColor     color.RGBA
	ValidPreview      color.RGBA
	InvalidPreview    color.RGBA
	FallbackColor     color.RGBA
	TurretColors      map[string]color.RGBA
	EnemyColors       map[string]color.RGBA
	PathStrokeWidth   float32
	EffectStrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales alpha by t in [0, 1]; premultiplied channels are scaled too.
func FadeColor(c color.RGBA, t float64) color.RGBA {
	k := utils.Clamp01(t)
	return color.RGBA{
		R: uint8(utils.Lerp(0, float64(c.R), k)),
		G: uint8(utils.Lerp(0, float64(c.G), k)),
		B: uint8(utils.Lerp(0, float64(c.B), k)),
		A: uint8(utils.Lerp(0, float64(c.A), k)),
	}
}

func (c FieldColors) turret(kind string) color.RGBA {
	if clr, ok := c.TurretColors[kind]; ok {
		return clr
	}
	return c.FallbackColor
}

func (c FieldColors) enemy(kind string) color.RGBA {
	if clr, ok := c.EnemyColors[kind]; ok {
		return clr
	}
	return c.FallbackColor
}
