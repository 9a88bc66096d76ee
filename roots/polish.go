package roots

import (
	"math/big"

	"github.com/rootscan/rootscan/utils/bignum"
)

// Polish refines every root of rs with prec bits of precision, running at most maxIterations
// Newton updates per root. Roots that cannot be refined, because f'(x) vanishes along the way,
// are returned at their original float64 value.
func Polish(f BigFunction, rs Roots, prec uint, maxIterations int) (polished []*big.Float) {

	polished = make([]*big.Float, len(rs))

	for i, x := range rs {

		x0 := bignum.NewFloat(x, prec)

		if root, err := bignum.NewtonRefine(f.BigValue, f.BigFirstDerivative, x0, maxIterations); err == nil {
			polished[i] = root
		} else {
			polished[i] = x0
		}
	}

	return
}
