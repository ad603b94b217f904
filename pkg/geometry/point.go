package geometry

import "math"

// Point represents a mutable point in 2D space
type Point struct {
	X float64
	Y float64
}

// NewPoint creates a new point at the given coordinates
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Origin creates a new point at the origin
func Origin() *Point {
	return NewPoint(0, 0)
}

// DistanceFromOrigin calculates the distance from the origin
func (p *Point) DistanceFromOrigin() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// DistanceTo calculates the distance to another point
func (p *Point) DistanceTo(other *Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Translate moves the point in place by the given offset
func (p *Point) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Translated returns a new point translated by the given offset,
// leaving the receiver unmodified
func (p *Point) Translated(dx, dy float64) *Point {
	return NewPoint(p.X+dx, p.Y+dy)
}
