// Package fixtures exposes a set of small, self-contained code samples
// used to validate source code parsers: basic arithmetic, a stateful
// calculator, 2D geometry, and helper utilities. Every exported symbol
// of the subpackages is re-exported here as a single flat API.
package fixtures

import (
	"github.com/averycrespi/parser-fixtures/pkg/calc"
	"github.com/averycrespi/parser-fixtures/pkg/geometry"
	"github.com/averycrespi/parser-fixtures/pkg/helpers"
	"github.com/averycrespi/parser-fixtures/pkg/project"
)

// Project metadata
const (
	Name    = project.Name
	Version = project.Version
)

// Types re-exported from the subpackages
type (
	Calculator  = calc.Calculator
	Operation   = calc.Operation
	Point       = geometry.Point
	LineSegment = geometry.LineSegment
)

// Arithmetic functions and the calculator constructor
var (
	Add            = calc.Add
	Subtract       = calc.Subtract
	Multiply       = calc.Multiply
	Divide         = calc.Divide
	ApplyOperation = calc.ApplyOperation
	NewCalculator  = calc.NewCalculator
)

// Geometry constructors
var (
	NewPoint       = geometry.NewPoint
	Origin         = geometry.Origin
	NewLineSegment = geometry.NewLineSegment
)

// Helper utilities
var (
	ValidateInput = helpers.ValidateInput
	FormatResult  = helpers.FormatResult
	Clamp         = helpers.Clamp
)

// ApplyToAll applies fn to every value, preserving order and length.
// Generic functions cannot be bound to package variables, so the
// generic helpers are re-exported as thin wrappers.
func ApplyToAll[T, R any](values []T, fn func(T) R) []R {
	return helpers.ApplyToAll(values, fn)
}

// Compose returns a function that applies g, then f
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return helpers.Compose(f, g)
}
