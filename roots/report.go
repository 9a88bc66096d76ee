package roots

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/zeebo/blake3"

	"github.com/rootscan/rootscan/utils"
)

// Roots is an ordered set of roots, pairwise at least epsilon apart.
type Roots []float64

// Digest returns the blake3 digest of the IEEE-754 representation of the roots, in order.
// Two scans with the same inputs have the same digest.
func (r Roots) Digest() []byte {
	hasher := blake3.New()
	buf := make([]byte, 8)
	for _, x := range r {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
		hasher.Write(buf)
	}
	return hasher.Sum(nil)
}

// Report is the result of a scan.
type Report struct {
	Interval
	Parameters Parameters

	Roots Roots

	// Seeds is the number of seeds tried. Every seed is
	// either rejected, exhausted, diverged or converged.
	Seeds     int
	Rejected  int
	Exhausted int
	Diverged  int

	// Converged seeds whose root was discarded.
	OutOfBounds int
	Duplicates  int

	// Iterations stores the number of Newton updates of every converged seed, in seed order.
	Iterations []float64
}

// Converged returns the number of seeds from which Newton's method converged.
func (r Report) Converged() int {
	return len(r.Iterations)
}

// Summary holds descriptive statistics on the number of
// Newton updates needed by the converged seeds.
type Summary struct {
	Min, Max, Mean, Median float64
}

// String returns a human readable representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("min=%.0f max=%.0f mean=%.2f median=%.1f", s.Min, s.Max, s.Mean, s.Median)
}

// Summary returns statistics on the iteration counts of the converged seeds.
// It returns an error if no seed converged.
func (r Report) Summary() (s Summary, err error) {

	data := stats.Float64Data(r.Iterations)

	if s.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("roots.Report.Summary: %w", err)
	}

	if s.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("roots.Report.Summary: %w", err)
	}

	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("roots.Report.Summary: %w", err)
	}

	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("roots.Report.Summary: %w", err)
	}

	return
}

// MaxResidual returns max |f(r)| over the roots of the report, or 0 if there are none.
func (r Report) MaxResidual(f Function) float64 {
	residuals := make([]float64, len(r.Roots))
	for i, x := range r.Roots {
		residuals[i] = math.Abs(f.Value(x))
	}
	return utils.MaxSlice(residuals)
}
