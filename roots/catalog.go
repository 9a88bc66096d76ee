package roots

import (
	"fmt"
	"math"
	"math/big"

	"github.com/rootscan/rootscan/utils"
	"github.com/rootscan/rootscan/utils/bignum"
)

// Analytic is a Function with closed form derivatives that can also be evaluated with arbitrary precision.
type Analytic interface {
	Function
	BigFunction
}

// quartic is f(x) = x^4 - 4.3x^3 - 1.29x^2 + 15.1sin(x) + 9.84.
type quartic struct{}

func (quartic) Value(x float64) float64 {
	return x*x*x*x - 4.3*x*x*x - 1.29*x*x + 15.1*math.Sin(x) + 9.84
}

func (quartic) FirstDerivative(x float64) float64 {
	return (151.0/10.0)*math.Cos(x) + 4.0*x*x*x - 12.9*x*x - (129.0/50.0)*x
}

func (quartic) SecondDerivative(x float64) float64 {
	return (1.0 / 50.0) * (-755.0*math.Sin(x) + 600.0*x*x - 1290.0*x - 129.0)
}

// The big float forms of the quartic parse its coefficients as decimals at the precision
// of x, so that a polished root is a root of the decimal function and not of its float64 rounding.
// Coefficients are listed from the constant to the highest degree.
var (
	quarticCoeffs           = []string{"9.84", "0", "-1.29", "-4.3", "1"}
	quarticDerivativeCoeffs = []string{"0", "-2.58", "-12.9", "4"}
)

// decimalPolyEval evaluates sum x^i * coeffs[i] with coefficients parsed at the precision of x.
func decimalPolyEval(x *big.Float, coeffs []string) *big.Float {
	poly := make([]*big.Float, len(coeffs))
	for i, c := range coeffs {
		poly[i] = bignum.NewFloat(c, x.Prec())
	}
	return bignum.MonomialEval(x, poly)
}

func (quartic) BigValue(x *big.Float) (y *big.Float) {
	y = decimalPolyEval(x, quarticCoeffs)
	return y.Add(y, new(big.Float).Mul(bignum.NewFloat("15.1", x.Prec()), bignum.Sin(x)))
}

func (quartic) BigFirstDerivative(x *big.Float) (y *big.Float) {
	y = decimalPolyEval(x, quarticDerivativeCoeffs)
	return y.Add(y, new(big.Float).Mul(bignum.NewFloat("15.1", x.Prec()), bignum.Cos(x)))
}

// polynomial is a Function defined by its coefficients, from the highest degree to the constant.
type polynomial []float64

func (p polynomial) Value(x float64) (y float64) {
	for _, c := range p {
		y = y*x + c
	}
	return
}

func (p polynomial) derivative() polynomial {
	if len(p) < 2 {
		return polynomial{0}
	}
	n := len(p) - 1
	d := make(polynomial, n)
	for i := range d {
		d[i] = p[i] * float64(n-i)
	}
	return d
}

func (p polynomial) FirstDerivative(x float64) float64 {
	return p.derivative().Value(x)
}

func (p polynomial) SecondDerivative(x float64) float64 {
	return p.derivative().derivative().Value(x)
}

func (p polynomial) BigValue(x *big.Float) (y *big.Float) {
	coeffs := make([]*big.Float, len(p))
	for i, c := range p {
		coeffs[len(p)-1-i] = bignum.NewFloat(c, x.Prec())
	}
	return bignum.MonomialEval(x, coeffs)
}

func (p polynomial) BigFirstDerivative(x *big.Float) (y *big.Float) {
	return p.derivative().BigValue(x)
}

// expo is f(x) = x*exp(x) - 1, whose only real root is the omega constant W(1).
type expo struct{}

func (expo) Value(x float64) float64 {
	return x*math.Exp(x) - 1
}

func (expo) FirstDerivative(x float64) float64 {
	return (x + 1) * math.Exp(x)
}

func (expo) SecondDerivative(x float64) float64 {
	return (x + 2) * math.Exp(x)
}

func (expo) BigValue(x *big.Float) (y *big.Float) {
	y = new(big.Float).Mul(x, bignum.Exp(x))
	return y.Sub(y, bignum.NewFloat(1, x.Prec()))
}

func (expo) BigFirstDerivative(x *big.Float) (y *big.Float) {
	y = new(big.Float).Add(x, bignum.NewFloat(1, x.Prec()))
	return y.Mul(y, bignum.Exp(x))
}

var (
	// Quartic is x^4 - 4.3x^3 - 1.29x^2 + 15.1sin(x) + 9.84.
	Quartic Analytic = quartic{}

	// Parabola is x^2 - 4.
	Parabola Analytic = polynomial{1, 0, -4}

	// TwoRoots is (x-1)(x-3).
	TwoRoots Analytic = polynomial{1, -4, 3}

	// Cubic is x^3 - 2x - 5.
	Cubic Analytic = polynomial{1, 0, -2, -5}

	// Expo is x*exp(x) - 1.
	Expo Analytic = expo{}
)

// DefaultFunction is the name of the function scanned when none is specified.
const DefaultFunction = "quartic"

var catalog = map[string]Analytic{
	"quartic":  Quartic,
	"parabola": Parabola,
	"tworoots": TwoRoots,
	"cubic":    Cubic,
	"expo":     Expo,
}

// Lookup returns the built-in function registered under name.
func Lookup(name string) (f Analytic, err error) {
	var ok bool
	if f, ok = catalog[name]; !ok {
		return nil, fmt.Errorf("roots.Lookup: unknown function %q, available functions are %v", name, Names())
	}
	return f, nil
}

// Names returns the sorted names of the built-in functions.
func Names() []string {
	return utils.GetSortedKeys(catalog)
}
