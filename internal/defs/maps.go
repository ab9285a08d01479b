package defs

import (
	"fmt"

	"go-path-defense/pkg/geom"
)

// MapPath is the immutable waypoint route enemies walk on a named map.
type MapPath struct {
	name      string
	waypoints []geom.Vec2
}

// NewMapPath copies points; a path needs at least two waypoints.
func NewMapPath(name string, points []geom.Vec2) (MapPath, error) {
	if name == "" {
		return MapPath{}, fmt.Errorf("map name must not be empty")
	}
	if len(points) < 2 {
		return MapPath{}, fmt.Errorf("map %s: need at least 2 waypoints, got %d", name, len(points))
	}
	wp := make([]geom.Vec2, len(points))
	copy(wp, points)
	return MapPath{name: name, waypoints: wp}, nil
}

func (p MapPath) Name() string { return p.name }

// Len - количество точек пути
func (p MapPath) Len() int { return len(p.waypoints) }

func (p MapPath) Point(i int) geom.Vec2 { return p.waypoints[i] }

func (p MapPath) Start() geom.Vec2 { return p.waypoints[0] }

// LastIndex is the index of the final waypoint; reaching it means the enemy escaped.
func (p MapPath) LastIndex() int { return len(p.waypoints) - 1 }

// Segments returns the number of walkable segments.
func (p MapPath) Segments() int { return len(p.waypoints) - 1 }

// Segment returns the endpoints of segment i (waypoint i to i+1).
func (p MapPath) Segment(i int) (geom.Vec2, geom.Vec2) {
	return p.waypoints[i], p.waypoints[i+1]
}

// Waypoints returns a copy safe for callers to keep.
func (p MapPath) Waypoints() []geom.Vec2 {
	out := make([]geom.Vec2, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}
