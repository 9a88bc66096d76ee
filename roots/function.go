// Package roots implements a seeded Newton-Raphson scanner that locates the distinct real roots
// of a twice differentiable function over a bounded interval.
package roots

import (
	"math/big"
)

// Function is a twice differentiable scalar function.
// The scanner only ever evaluates a Function inside the scanned interval,
// callers must ensure it is defined there.
type Function interface {
	Value(x float64) (y float64)
	FirstDerivative(x float64) (y float64)
	SecondDerivative(x float64) (y float64)
}

// BigFunction is a Function that can also be evaluated with arbitrary precision.
// It is required by Polish.
type BigFunction interface {
	BigValue(x *big.Float) (y *big.Float)
	BigFirstDerivative(x *big.Float) (y *big.Float)
}

// Func is a Function defined by its value and its first two derivatives.
type Func struct {
	F   func(x float64) (y float64)
	DF  func(x float64) (y float64)
	DF2 func(x float64) (y float64)
}

// Value returns f(x).
func (f Func) Value(x float64) float64 {
	return f.F(x)
}

// FirstDerivative returns f'(x).
func (f Func) FirstDerivative(x float64) float64 {
	return f.DF(x)
}

// SecondDerivative returns f''(x).
func (f Func) SecondDerivative(x float64) float64 {
	return f.DF2(x)
}
