package component

import (
	"image/color"

	"go-path-defense/pkg/geom"
)

// EffectKind identifies how the renderer should draw an effect.
type EffectKind string

const EffectShoot EffectKind = "shoot"

// VisualEffect - кратковременный эффект для рендера. Not part of authoritative game state.
type VisualEffect struct {
	Kind      EffectKind
	From, To  geom.Vec2
	Color     color.RGBA
	StartTime float64 // simulation seconds
	Duration  float64
}

// Expired reports whether the effect has outlived its duration at time now.
func (v VisualEffect) Expired(now float64) bool {
	return now-v.StartTime >= v.Duration
}
