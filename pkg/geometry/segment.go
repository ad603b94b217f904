package geometry

// LineSegment represents a line segment between two points. The segment
// holds references to its endpoints rather than copies, so translating
// an endpoint is visible through the segment.
type LineSegment struct {
	Start *Point
	End   *Point
}

// NewLineSegment creates a new line segment between two points
func NewLineSegment(start, end *Point) *LineSegment {
	return &LineSegment{Start: start, End: end}
}

// Length calculates the length of the line segment. Degenerate
// zero-length segments are valid.
func (s *LineSegment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Midpoint calculates the midpoint of the line segment
func (s *LineSegment) Midpoint() *Point {
	return NewPoint((s.Start.X+s.End.X)/2, (s.Start.Y+s.End.Y)/2)
}
