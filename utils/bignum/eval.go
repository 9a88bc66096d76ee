package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i] with Horner's method.
// The precision of y is the precision of x.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {
	y = NewFloat(0, x.Prec())
	for i := len(poly) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}
	return
}
