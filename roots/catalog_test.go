package roots

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// derivative approximates f'(x) with a central difference.
func derivative(f func(float64) float64, x float64) float64 {
	h := 1e-6
	return (f(x+h) - f(x-h)) / (2 * h)
}

func TestCatalog(t *testing.T) {

	require.Equal(t, []string{"cubic", "expo", "parabola", "quartic", "tworoots"}, Names())

	for _, name := range Names() {

		f, err := Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for _, x := range []float64{-2.5, -0.3, 0.7, 1.9, 3.2} {
				require.InDelta(t, derivative(f.Value, x), f.FirstDerivative(x), 1e-4)
				require.InDelta(t, derivative(f.FirstDerivative, x), f.SecondDerivative(x), 1e-4)

				xBig := new(big.Float).SetPrec(128).SetFloat64(x)

				y, _ := f.BigValue(xBig).Float64()
				require.InDelta(t, f.Value(x), y, 1e-12)

				dy, _ := f.BigFirstDerivative(xBig).Float64()
				require.InDelta(t, f.FirstDerivative(x), dy, 1e-12)
			}
		})
	}

	_, err := Lookup("sine")
	require.Error(t, err)

	_, err = Lookup(DefaultFunction)
	require.NoError(t, err)
}
