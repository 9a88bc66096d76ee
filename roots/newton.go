package roots

import (
	"math"
)

// Outcome is the final state of a Newton iteration started from a seed.
type Outcome int

const (
	// Rejected means f(x0)*f''(x0) <= 0 and no iteration was attempted.
	Rejected = Outcome(iota)
	// Converged means |f(x)| < epsilon was reached.
	Converged
	// Exhausted means the iteration cap was reached without converging.
	Exhausted
	// Diverged means the iterate became NaN or infinite, e.g. after a division by f'(x) = 0.
	Diverged
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Newton runs Newton's method on f from x0 and returns the first iterate x with |f(x)| < epsilon.
// The seed is rejected without iterating if f(x0)*f''(x0) <= 0, so that the method is only started
// where the function and its curvature agree in sign.
// The returned boolean is false if the seed was rejected or if the iteration did not converge within
// maxIterations steps.
func Newton(f Function, x0, epsilon float64, maxIterations int) (root float64, ok bool) {
	root, _, outcome := newton(f, x0, epsilon, maxIterations)
	return root, outcome == Converged
}

// newton returns the last iterate, the number of updates that were applied and the outcome.
func newton(f Function, x0, epsilon float64, maxIterations int) (x float64, iterations int, outcome Outcome) {

	if f.Value(x0)*f.SecondDerivative(x0) <= 0 {
		return x0, 0, Rejected
	}

	x = x0

	for iterations = 0; iterations < maxIterations; iterations++ {

		fx := f.Value(x)
		dfx := f.FirstDerivative(x)

		if math.Abs(fx) < epsilon {
			return x, iterations, Converged
		}

		x -= fx / dfx

		// A non-finite iterate can never satisfy the tolerance again.
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return x, iterations + 1, Diverged
		}
	}

	return x, iterations, Exhausted
}
