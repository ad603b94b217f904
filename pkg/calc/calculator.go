package calc

import "fmt"

// Calculator maintains a running value and a history of the operations
// applied to it
type Calculator struct {
	value   float64
	history []string
}

// NewCalculator creates a new Calculator with the given initial value
func NewCalculator(initial float64) *Calculator {
	return &Calculator{value: initial}
}

// Add adds a number to the current value and returns the new value
func (c *Calculator) Add(n float64) float64 {
	c.value += n
	c.logOperation(fmt.Sprintf("add %v", n))
	return c.value
}

// Subtract subtracts a number from the current value and returns the new value
func (c *Calculator) Subtract(n float64) float64 {
	c.value -= n
	c.logOperation(fmt.Sprintf("subtract %v", n))
	return c.value
}

// Reset resets the calculator to zero and clears the history
func (c *Calculator) Reset() {
	c.value = 0
	c.history = nil
}

// Value returns the current value
func (c *Calculator) Value() float64 {
	return c.value
}

// History returns a copy of the operation history. Mutating the
// returned slice does not affect the calculator.
func (c *Calculator) History() []string {
	history := make([]string, len(c.history))
	copy(history, c.history)
	return history
}

// logOperation appends an entry to the operation history
func (c *Calculator) logOperation(op string) {
	c.history = append(c.history, op)
}

// String returns a string representation of the calculator
func (c *Calculator) String() string {
	return fmt.Sprintf("Calculator(value: %v)", c.value)
}
