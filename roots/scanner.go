package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/rootscan/rootscan/utils"
)

var (
	// ErrNonFiniteBound is returned by Scanner.Scan when a bound of the interval is NaN or infinite.
	ErrNonFiniteBound = errors.New("non-finite interval bound")

	// ErrStepUnderflow is returned by Scanner.Scan when the seed spacing is too small,
	// relative to the magnitude of the seeds, for the scan cursor to advance.
	ErrStepUnderflow = errors.New("seed spacing underflows")
)

// Interval is the closed interval [Lower, Upper] scanned for roots.
// An interval with Upper < Lower is valid and contains no seed.
type Interval struct {
	Lower, Upper float64
}

// Contains returns true if Lower <= x <= Upper.
func (i Interval) Contains(x float64) bool {
	return i.Lower <= x && x <= i.Upper
}

// Scanner locates the distinct roots of a Function over an interval by starting
// a safeguarded Newton iteration from evenly spaced seeds.
//
// The seeds are Lower, Lower + step, Lower + 2*step, ... with step = StepFactor * epsilon,
// each obtained by adding step to the previous one, as long as seed + step <= Upper.
// A root is kept if it lies in the interval and is at least epsilon away from every root
// kept before it. Roots are returned in the order in which they were found.
//
// The scan is a heuristic: roots whose basin of attraction is narrower than the seed
// spacing, or that are only reachable from seeds rejected by the safeguard of Newton,
// are missed.
type Scanner struct {
	params Parameters
}

// NewScanner creates a new Scanner from the given parameters.
func NewScanner(params Parameters) *Scanner {
	return &Scanner{params: params}
}

// Parameters returns the parameters of the scanner.
func (s Scanner) Parameters() Parameters {
	return s.params
}

// FindRoots returns the distinct roots of f in [lower, upper] with epsilon as convergence tolerance
// and DefaultMaxIterations as per-seed iteration cap.
// It returns an empty slice if no root is found, if the interval is narrower than one seed
// spacing or if the parameters are invalid.
func FindRoots(f Function, epsilon, lower, upper float64) []float64 {

	params, err := NewParameters(epsilon, DefaultMaxIterations)
	if err != nil {
		return []float64{}
	}

	return NewScanner(params).FindRoots(f, lower, upper)
}

// FindRoots returns the distinct roots of f in [lower, upper].
// An interval the scanner cannot walk (see Scan) yields an empty result.
func (s Scanner) FindRoots(f Function, lower, upper float64) Roots {
	report, err := s.Scan(f, Interval{Lower: lower, Upper: upper})
	if err != nil {
		return Roots{}
	}
	return report.Roots
}

// Scan walks the seeds of the interval and returns the distinct roots of f along
// with a tally of what happened to every seed.
// It returns ErrNonFiniteBound or ErrStepUnderflow, wrapped, for intervals whose
// seeds cannot be enumerated.
func (s Scanner) Scan(f Function, interval Interval) (report Report, err error) {

	lower, upper := interval.Lower, interval.Upper

	if math.IsNaN(lower) || math.IsInf(lower, 0) || math.IsNaN(upper) || math.IsInf(upper, 0) {
		return Report{}, fmt.Errorf("roots.Scanner.Scan: [%v, %v]: %w", lower, upper, ErrNonFiniteBound)
	}

	epsilon := s.params.Epsilon()
	step := s.params.Step()
	maxIterations := s.params.MaxIterations()

	report = Report{
		Interval:   interval,
		Parameters: s.params,
		Roots:      Roots{},
	}

	for x0 := lower; x0+step <= upper; x0 += step {

		if x0+step == x0 {
			return Report{}, fmt.Errorf("roots.Scanner.Scan: step %v at %v: %w", step, x0, ErrStepUnderflow)
		}

		report.Seeds++

		root, iterations, outcome := newton(f, x0, epsilon, maxIterations)

		switch outcome {
		case Rejected:
			report.Rejected++
			continue
		case Exhausted:
			report.Exhausted++
			continue
		case Diverged:
			report.Diverged++
			continue
		}

		report.Iterations = append(report.Iterations, float64(iterations))

		if !interval.Contains(root) {
			report.OutOfBounds++
			continue
		}

		if utils.AnyWithin(report.Roots, root, epsilon) {
			report.Duplicates++
			continue
		}

		report.Roots = append(report.Roots, root)
	}

	return report, nil
}
