package geo

import "math"

const (
	// MapWidth and MapHeight are the extents of the city map in map units.
	MapWidth  = 1000.0
	MapHeight = 600.0
)

// Point is a position on the flat city map.
type Point struct {
	X float64
	Y float64
}

// Bounds is an axis-aligned rectangle, inclusive on every edge.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// CityBounds is the map area trucks are kept within.
var CityBounds = Bounds{MinX: 0, MinY: 0, MaxX: MapWidth, MaxY: MapHeight}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Clamp returns the point of b nearest to p.
func (b Bounds) Clamp(p Point) Point {
	return Point{X: clamp(p.X, b.MinX, b.MaxX), Y: clamp(p.Y, b.MinY, b.MaxY)}
}

// Distance is the straight-line distance between two map points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
