package roots

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rootscan/rootscan/utils/sampling"
)

// seedRecorder records the points at which the second derivative is evaluated,
// which the scanner only does once per seed.
type seedRecorder struct {
	Function
	seeds []float64
}

func (r *seedRecorder) SecondDerivative(x float64) float64 {
	r.seeds = append(r.seeds, x)
	return r.Function.SecondDerivative(x)
}

func testScanner(t *testing.T, epsilon float64, maxIterations int) *Scanner {
	params, err := NewParameters(epsilon, maxIterations)
	require.NoError(t, err)
	return NewScanner(params)
}

func requireRootProperties(t *testing.T, f Function, epsilon float64, interval Interval, rs Roots) {
	for i, r := range rs {
		require.True(t, interval.Contains(r), "root %v outside %v", r, interval)
		require.Less(t, math.Abs(f.Value(r)), epsilon)
		for _, other := range rs[i+1:] {
			require.GreaterOrEqual(t, math.Abs(r-other), epsilon)
		}
	}
}

func TestFindRoots(t *testing.T) {

	t.Run("Parabola", func(t *testing.T) {
		rs := FindRoots(Parabola, 1e-4, 0, 4)
		require.Len(t, rs, 1)
		require.InDelta(t, 2.0, rs[0], 1e-4)
	})

	t.Run("InvertedInterval", func(t *testing.T) {
		rs := FindRoots(Parabola, 1e-4, 5, 1)
		require.NotNil(t, rs)
		require.Empty(t, rs)
	})

	t.Run("NarrowerThanOneStep", func(t *testing.T) {
		for _, f := range []Function{Parabola, TwoRoots, Quartic, Func{
			F:   func(x float64) float64 { return 0 },
			DF:  func(x float64) float64 { return 0 },
			DF2: func(x float64) float64 { return 0 },
		}} {
			require.Empty(t, FindRoots(f, 1e-4, 0, 0.0005))
		}
	})

	t.Run("TwoRoots", func(t *testing.T) {
		rs := FindRoots(TwoRoots, 1e-4, 0, 4)
		require.Len(t, rs, 2)
		require.InDelta(t, 1.0, rs[0], 1e-4)
		require.InDelta(t, 3.0, rs[1], 1e-4)
		requireRootProperties(t, TwoRoots, 1e-4, Interval{0, 4}, rs)
	})

	t.Run("InvalidEpsilon", func(t *testing.T) {
		require.Empty(t, FindRoots(Parabola, 0, 0, 4))
		require.Empty(t, FindRoots(Parabola, -1e-4, 0, 4))
	})

	t.Run("NonFiniteBounds", func(t *testing.T) {
		require.Empty(t, FindRoots(Parabola, 1e-4, math.Inf(-1), 4))
		require.Empty(t, FindRoots(Parabola, 1e-4, 0, math.NaN()))
	})
}

func TestScanner(t *testing.T) {

	t.Run("Quartic", func(t *testing.T) {
		s := testScanner(t, 1e-4, 1000)
		rs := s.FindRoots(Quartic, 0, 4)
		require.Len(t, rs, 1)
		require.InDelta(t, 2.000335, rs[0], 1e-4)
		requireRootProperties(t, Quartic, 1e-4, Interval{0, 4}, rs)
	})

	t.Run("QuarticWideInterval", func(t *testing.T) {
		s := testScanner(t, 1e-3, 1000)
		rs := s.FindRoots(Quartic, -3, 5)
		require.Len(t, rs, 2)
		require.InDelta(t, 2.000335, rs[0], 1e-3)
		require.InDelta(t, 4.631015, rs[1], 1e-3)
		requireRootProperties(t, Quartic, 1e-3, Interval{-3, 5}, rs)
	})

	t.Run("Determinism", func(t *testing.T) {
		s := testScanner(t, 1e-4, 1000)
		r0 := s.FindRoots(Quartic, -1, 5)
		r1 := s.FindRoots(Quartic, -1, 5)
		require.Equal(t, r0, r1)
		require.Equal(t, r0.Digest(), r1.Digest())
	})

	t.Run("SeedCoverage", func(t *testing.T) {
		s := testScanner(t, 1e-3, 1000)
		f := &seedRecorder{Function: TwoRoots}

		report, err := s.Scan(f, Interval{Lower: 0.25, Upper: 3.5})
		require.NoError(t, err)
		require.Len(t, f.seeds, report.Seeds)

		step := s.Parameters().Step()
		require.Equal(t, 0.25, f.seeds[0])
		for i := 1; i < len(f.seeds); i++ {
			require.Equal(t, f.seeds[i-1]+step, f.seeds[i])
		}
		for _, x := range f.seeds {
			require.LessOrEqual(t, x+step, 3.5)
		}
		next := f.seeds[len(f.seeds)-1] + step
		require.Greater(t, next+step, 3.5)
	})

	t.Run("ReportTally", func(t *testing.T) {
		s := testScanner(t, 1e-4, 1000)
		report, err := s.Scan(TwoRoots, Interval{Lower: 0, Upper: 4})
		require.NoError(t, err)
		require.Equal(t, report.Seeds, report.Rejected+report.Exhausted+report.Diverged+report.Converged())
		require.Equal(t, report.Converged(), report.OutOfBounds+report.Duplicates+len(report.Roots))
		require.Len(t, report.Roots, 2)
		require.Positive(t, report.Rejected)
		require.Positive(t, report.Duplicates)
		require.Less(t, report.MaxResidual(TwoRoots), 1e-4)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		// Seeds in [3.5, 4] converge to 3, which is outside the interval.
		s := testScanner(t, 1e-4, 1000)
		report, err := s.Scan(TwoRoots, Interval{Lower: 3.5, Upper: 4})
		require.NoError(t, err)
		require.Empty(t, report.Roots)
		require.Equal(t, report.Converged(), report.OutOfBounds)
		require.Positive(t, report.OutOfBounds)
	})

	t.Run("NonFiniteBound", func(t *testing.T) {
		s := testScanner(t, 1e-4, 1000)
		for _, interval := range []Interval{
			{Lower: math.NaN(), Upper: 1},
			{Lower: 0, Upper: math.Inf(1)},
			{Lower: math.Inf(-1), Upper: 0},
		} {
			_, err := s.Scan(Parabola, interval)
			require.True(t, errors.Is(err, ErrNonFiniteBound))
		}
	})

	t.Run("StepUnderflow", func(t *testing.T) {
		s := testScanner(t, 1e-4, 1000)
		_, err := s.Scan(Parabola, Interval{Lower: 1e20, Upper: 1e21})
		require.True(t, errors.Is(err, ErrStepUnderflow))
		require.Empty(t, s.FindRoots(Parabola, 1e20, 1e21))
	})

	t.Run("ZeroParameters", func(t *testing.T) {
		_, err := NewScanner(Parameters{}).Scan(Parabola, Interval{Lower: 0, Upper: 4})
		require.True(t, errors.Is(err, ErrStepUnderflow))
	})

	t.Run("Exhausted", func(t *testing.T) {
		// Newton cycles between 0 and 1 on x^3 - 2x + 2 when started from 1.
		f := Func{
			F:   func(x float64) float64 { return x*x*x - 2*x + 2 },
			DF:  func(x float64) float64 { return 3*x*x - 2 },
			DF2: func(x float64) float64 { return 6 * x },
		}
		s := testScanner(t, 1e-4, 50)
		report, err := s.Scan(f, Interval{Lower: 1, Upper: 1.0015})
		require.NoError(t, err)
		require.Equal(t, 1, report.Seeds)
		require.Equal(t, 1, report.Exhausted)
		require.Empty(t, report.Roots)
	})
}

func TestScannerProperties(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("rootscan"))
	require.NoError(t, err)
	sampler := sampling.NewFloat64Sampler(prng)

	epsilon := 1e-3
	s := testScanner(t, epsilon, 1000)

	for _, f := range []Analytic{Quartic, Parabola, TwoRoots, Cubic} {

		for i := 0; i < 8; i++ {

			lower := sampler.Float64(-3, 3)
			upper := lower + sampler.Float64(0, 4)
			interval := Interval{Lower: lower, Upper: upper}

			report, err := s.Scan(f, interval)
			require.NoError(t, err)
			requireRootProperties(t, f, epsilon, interval, report.Roots)

			again, err := s.Scan(f, interval)
			require.NoError(t, err)
			require.Equal(t, report.Roots.Digest(), again.Roots.Digest())

			narrow := Interval{Lower: lower, Upper: lower + sampler.Float64(0, 0.9*s.Parameters().Step())}
			report, err = s.Scan(f, narrow)
			require.NoError(t, err)
			require.Zero(t, report.Seeds)
			require.Empty(t, report.Roots)
		}
	}
}
