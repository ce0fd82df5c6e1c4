package series

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Taylor sums the truncated series
//
//	y(x*) ≈ y0 + Σ_{k=1..n} (x* - x0)^k / k! · y^(k)(x0)
//
// where derivs[k-1] evaluates the k-th derivative at (x0, y0).
func Taylor(derivs []numeric.Func2, x0, y0, xStar float64, n int) (float64, error) {
	if n > len(derivs) {
		return 0, fmt.Errorf("%w: %d terms, %d derivatives", numeric.ErrNotEnoughDerivatives, n, len(derivs))
	}

	terms, err := Coefficients(derivs, x0, y0, n)
	if err != nil {
		return 0, err
	}

	result := terms[0]
	factorial := 1.0
	dx := xStar - x0
	for k := 1; k < len(terms); k++ {
		factorial *= float64(k)
		result += math.Pow(dx, float64(k)) / factorial * terms[k]
	}
	return result, nil
}

// Coefficients returns [y0, y'(x0), ..., y^(n)(x0)].
func Coefficients(derivs []numeric.Func2, x0, y0 float64, n int) ([]float64, error) {
	if n > len(derivs) {
		return nil, fmt.Errorf("%w: %d terms, %d derivatives", numeric.ErrNotEnoughDerivatives, n, len(derivs))
	}

	values := make([]float64, 0, n+1)
	values = append(values, y0)
	for k := 0; k < n; k++ {
		values = append(values, derivs[k](x0, y0))
	}
	return values, nil
}
