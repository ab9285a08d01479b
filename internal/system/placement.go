package system

import (
	"errors"
	"fmt"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"
)

var (
	ErrTooCloseToTurret = errors.New("too close to another turret")
	ErrOnPath           = errors.New("cannot place turret on the path")
	ErrInvalidPosition  = errors.New("position is not a finite point")
)

// PlacementRules are the minimum clearances a new turret must keep.
type PlacementRules struct {
	MinTurretSpacing float64
	PathClearance    float64
}

// DefaultPlacementRules uses the config constants (50 from turrets, 30 from the path).
func DefaultPlacementRules() PlacementRules {
	return PlacementRules{
		MinTurretSpacing: config.MinTurretSpacing,
		PathClearance:    config.PathClearance,
	}
}

// CheckPlacement validates a turret position without side effects. A point
// closer than MinTurretSpacing to a turret, or closer than PathClearance to any
// path segment (clamped to the segment), is rejected. NaN and Inf coordinates
// are rejected before any distance check, since every comparison with NaN is false.
func (r PlacementRules) CheckPlacement(p geom.Vec2, path defs.MapPath, turrets []*component.Turret) error {
	if !p.IsFinite() {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidPosition, p.X, p.Y)
	}
	for _, t := range turrets {
		if d := p.DistanceTo(t.Position); d < r.MinTurretSpacing {
			return fmt.Errorf("%w: %.1f < %.0f", ErrTooCloseToTurret, d, r.MinTurretSpacing)
		}
	}
	for i := 0; i < path.Segments(); i++ {
		a, b := path.Segment(i)
		if d := geom.PointSegmentDistance(p, a, b); d < r.PathClearance {
			return fmt.Errorf("%w: %.1f from segment %d", ErrOnPath, d, i)
		}
	}
	return nil
}

// IsValidPlacement is CheckPlacement as a boolean.
func (r PlacementRules) IsValidPlacement(p geom.Vec2, path defs.MapPath, turrets []*component.Turret) bool {
	return r.CheckPlacement(p, path, turrets) == nil
}
