package shape

import (
	"math"
	"slices"
)

// MinArcSegments is the lowest resolution SectorPath accepts.
const MinArcSegments = 3

// Point is a 2D point in an element's local space, origin at the element centre.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path is a polyline outline. Closed paths connect the last point back to the first.
type Path struct {
	Points []Point `json:"points"`
	Closed bool    `json:"closed,omitempty"`
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	return len(p.Points) == 0
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return &Path{Points: slices.Clone(p.Points), Closed: p.Closed}
}

// Equal reports whether p and q hold the same points. Two nil paths are equal;
// a nil path never equals a present one.
func (p *Path) Equal(q *Path) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.Closed == q.Closed && slices.Equal(p.Points, q.Points)
}

// Finite reports whether every coordinate is neither NaN nor infinite.
func (p *Path) Finite() bool {
	for _, pt := range p.Points {
		if !finite(pt.X, pt.Y) {
			return false
		}
	}
	return true
}

// Bounds returns the axis aligned bounding box of the path.
// ok is false for an empty path.
func (p *Path) Bounds() (min, max Point, ok bool) {
	if len(p.Points) == 0 {
		return Point{}, Point{}, false
	}

	min, max = p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max, true
}

// SectorPath builds the closed outline of a field of view of the given radius.
// angle and direction are in degrees. An angle of 360 or more yields a full
// circle; otherwise the outline starts at the centre and sweeps from
// direction-angle/2 to direction+angle/2. A non-positive radius or angle gives
// an empty, closed path.
func SectorPath(radius, angle, direction float64, segments int) *Path {
	path := &Path{Closed: true}
	if !(radius > 0) || !(angle > 0) {
		return path
	}
	if segments < MinArcSegments {
		segments = MinArcSegments
	}

	if angle >= FullCircle {
		path.Points = make([]Point, 0, segments)
		step := 2 * math.Pi / float64(segments)
		start := toRadians(direction)
		for i := 0; i < segments; i++ {
			path.Points = append(path.Points, polar(radius, start+float64(i)*step))
		}
		return path
	}

	path.Points = make([]Point, 0, segments+2)
	path.Points = append(path.Points, Point{})
	start := toRadians(direction - angle/2)
	step := toRadians(angle) / float64(segments)
	for i := 0; i <= segments; i++ {
		path.Points = append(path.Points, polar(radius, start+float64(i)*step))
	}
	return path
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func polar(r, theta float64) Point {
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
