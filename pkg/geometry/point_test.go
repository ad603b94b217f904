package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrigin(t *testing.T) {
	p := Origin()

	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.DistanceFromOrigin())
}

func TestPoint_DistanceFromOrigin(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{name: "origin", x: 0, y: 0, expected: 0},
		{name: "3-4-5 triangle", x: 3, y: 4, expected: 5},
		{name: "negative coordinates", x: -3, y: -4, expected: 5},
		{name: "on axis", x: 0, y: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoint(tt.x, tt.y)
			assert.Equal(t, tt.expected, p.DistanceFromOrigin())
		})
	}
}

func TestPoint_DistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		p, q     *Point
		expected float64
	}{
		{name: "vertical", p: NewPoint(0, 10), q: NewPoint(0, 5), expected: 5},
		{name: "diagonal", p: NewPoint(-11, 1), q: NewPoint(-7, -2), expected: 5},
		{name: "same point", p: NewPoint(2, 3), q: NewPoint(2, 3), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.DistanceTo(tt.q))
			assert.Equal(t, tt.expected, tt.q.DistanceTo(tt.p))
		})
	}
}

func TestPoint_Translate(t *testing.T) {
	p := NewPoint(1, 2)

	p.Translate(2, 3)

	assert.Equal(t, 3.0, p.X)
	assert.Equal(t, 5.0, p.Y)
}

func TestPoint_Translated(t *testing.T) {
	p := NewPoint(0, 0)

	q := p.Translated(2, 3)

	assert.Equal(t, 2.0, q.X)
	assert.Equal(t, 3.0, q.Y)

	// The original point is untouched.
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.NotSame(t, p, q)
}
