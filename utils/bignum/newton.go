// Package bignum implements arbitrary precision arithmetic on top of math/big:
// elementary functions and the Newton refinement of simple roots.
package bignum

import (
	"fmt"
	"math/big"
)

// NewtonRefine runs Newton's method on f from x0 with the precision of x0 and returns
// the refined root. It stops as soon as the Newton update is smaller than
// 2^{-prec/2} * max(1, |x|), from which point the quadratic convergence of the method
// makes the returned root accurate to about prec bits.
//
// It returns the last iterate and a non-nil error if df vanishes at an iterate or if
// the method did not converge within maxIterations updates.
func NewtonRefine(f, df func(x *big.Float) (y *big.Float), x0 *big.Float, maxIterations int) (x *big.Float, err error) {

	prec := x0.Prec()

	x = new(big.Float).SetPrec(prec).Set(x0)

	one := NewFloat(1, prec)

	tol := new(big.Float).SetPrec(prec).SetMantExp(one, -int(prec>>1))

	dx := new(big.Float).SetPrec(prec)
	bound := new(big.Float).SetPrec(prec)

	for i := 0; i < maxIterations; i++ {

		dfx := df(x)

		if dfx.Sign() == 0 {
			return x, fmt.Errorf("bignum.NewtonRefine: derivative vanishes at x=%v", x)
		}

		dx.Quo(f(x), dfx)
		x.Sub(x, dx)

		// bound = tol * max(1, |x|)
		bound.Abs(x)
		if bound.Cmp(one) < 0 {
			bound.Set(one)
		}
		bound.Mul(bound, tol)

		if new(big.Float).Abs(dx).Cmp(bound) <= 0 {
			return x, nil
		}
	}

	return x, fmt.Errorf("bignum.NewtonRefine: no convergence after %d iterations", maxIterations)
}
