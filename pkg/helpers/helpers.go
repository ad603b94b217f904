// Package helpers provides small standalone utilities: input
// validation, result formatting, clamping, list mapping, and function
// composition.
package helpers

import (
	"fmt"
	"math"
)

// ValidateInput reports whether x is non-negative
func ValidateInput(x float64) bool {
	return x >= 0
}

// FormatResult formats a result value as "Result: {value}"
func FormatResult(value any) string {
	return fmt.Sprintf("Result: %v", value)
}

// Clamp clamps a value between minVal and maxVal. The inner min is
// applied before the outer max.
func Clamp(value, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(value, maxVal))
}

// ApplyToAll applies fn to every value, preserving order and length.
// The input slice is never mutated.
func ApplyToAll[T, R any](values []T, fn func(T) R) []R {
	if values == nil {
		return nil
	}
	results := make([]R, 0, len(values))
	for _, v := range values {
		results = append(results, fn(v))
	}
	return results
}

// Compose returns a function that applies g, then f
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(x A) C {
		return f(g(x))
	}
}
