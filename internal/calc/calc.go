// Package calc provides the arithmetic operations behind the calc CLI.
//
// Operations are pure functions over int64. Arithmetic follows Go's
// two's-complement semantics; results that exceed int64 wrap around.
// The only failure mode in the package is division by zero.
package calc

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("divide by zero")

// Add returns the sum of a and b.
func Add(a, b int64) int64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int64) int64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b int64) int64 {
	return a * b
}

// Divide returns the quotient of a and b, truncated toward zero.
// Returns ErrDivideByZero if b is zero.
func Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
