package roots

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
)

const (
	// DefaultEpsilon is the convergence tolerance substituted for a zero Epsilon.
	DefaultEpsilon = 1e-4

	// DefaultMaxIterations is the per-seed Newton iteration cap substituted for a zero MaxIterations.
	DefaultMaxIterations = 1000000000

	// StepFactor is the ratio between the seed spacing and the convergence tolerance.
	StepFactor = 10
)

// ParametersLiteral is a literal representation of the scanner parameters.
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParametersFromLiteral function is used to
// generate the actual checked parameters from the literal representation.
//
// Epsilon is both the Newton convergence tolerance and, multiplied by StepFactor,
// the spacing between two consecutive seeds. MaxIterations caps the number of
// Newton iterations run from a single seed.
//
// If left unset, the fields are substituted with DefaultEpsilon and DefaultMaxIterations.
type ParametersLiteral struct {
	Epsilon       float64 `json:",omitempty"`
	MaxIterations int     `json:",omitempty"`
}

// Parameters represents a checked set of scanner parameters. Its fields are private and
// immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	epsilon       float64
	maxIterations int
}

// NewParameters returns a new set of scanner parameters from the given tolerance and
// iteration cap. It returns the empty parameters Parameters{} and a non-nil error if
// the specified parameters are invalid.
func NewParameters(epsilon float64, maxIterations int) (params Parameters, err error) {

	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		return Parameters{}, fmt.Errorf("roots.NewParameters: invalid epsilon %v, must be finite and strictly positive", epsilon)
	}

	if maxIterations <= 0 {
		return Parameters{}, fmt.Errorf("roots.NewParameters: invalid maxIterations %d, must be strictly positive", maxIterations)
	}

	return Parameters{epsilon: epsilon, maxIterations: maxIterations}, nil
}

// NewParametersFromLiteral instantiates a set of scanner parameters from a ParametersLiteral specification.
// It returns the empty parameters Parameters{} and a non-nil error if the specified parameters are invalid.
//
// If Epsilon is left unset, its value is set to DefaultEpsilon.
//
// If MaxIterations is left unset, its value is set to DefaultMaxIterations.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {

	if paramDef.Epsilon == 0 {
		paramDef.Epsilon = DefaultEpsilon
	}

	if paramDef.MaxIterations == 0 {
		paramDef.MaxIterations = DefaultMaxIterations
	}

	return NewParameters(paramDef.Epsilon, paramDef.MaxIterations)
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Epsilon:       p.epsilon,
		MaxIterations: p.maxIterations,
	}
}

// Epsilon returns the convergence tolerance.
func (p Parameters) Epsilon() float64 {
	return p.epsilon
}

// MaxIterations returns the per-seed Newton iteration cap.
func (p Parameters) MaxIterations() int {
	return p.maxIterations
}

// Step returns the spacing between two consecutive seeds.
func (p Parameters) Step() float64 {
	return p.epsilon * StepFactor
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
