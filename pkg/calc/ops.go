package calc

import (
	"fmt"
	"io"
	"os"
)

// Operation represents a binary operation over two numbers
type Operation func(a, b float64) float64

// output is the destination for ApplyOperation's result line.
// Tests swap this out to capture the printed output.
var output io.Writer = os.Stdout

// Add adds two numbers together
func Add(a, b float64) float64 {
	return a + b
}

// Subtract subtracts b from a
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply multiplies two numbers
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide divides a by b. The boolean reports whether the quotient is
// valid; dividing by zero yields (0, false) rather than an error.
func Divide(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// ApplyOperation applies a custom operation to two numbers, prints the
// result as "Result is: {value}", and returns it
func ApplyOperation(a, b float64, op Operation) float64 {
	result := op(a, b)
	fmt.Fprintf(output, "Result is: %v\n", result)
	return result
}

// isValid reports whether x is non-negative.
func isValid(x float64) bool {
	return x >= 0
}
