package eigen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/verify"
)

// Estimate is the outcome of a power-type iteration. History holds the
// Rayleigh quotient after every iteration.
type Estimate struct {
	Value      float64
	Vector     numeric.Vector
	Iterations int
	Converged  bool
	History    []float64
}

// Residual returns ||A v - lambda v||.
func (e Estimate) Residual(a numeric.Matrix) float64 {
	return a.MulVec(e.Vector).Sub(e.Vector.Scale(e.Value)).Norm()
}

// RandomStart draws a unit vector with uniform [0, 1) components.
func RandomStart(n int, rng *rand.Rand) numeric.Vector {
	x := make(numeric.Vector, n)
	for i := range x {
		x[i] = rng.Float64()
	}
	return x.Scale(1 / x.Norm())
}

func rayleigh(a numeric.Matrix, x numeric.Vector) float64 {
	return x.Dot(a.MulVec(x)) / x.Dot(x)
}

// Power converges to the eigenvalue of largest magnitude by repeated
// multiplication and renormalisation.
func Power(a numeric.Matrix, x0 numeric.Vector, tol float64, maxIter int) Estimate {
	x := x0.Clone()
	est := Estimate{History: make([]float64, 0)}
	prev := 0.0

	for i := 0; i < maxIter; i++ {
		y := a.MulVec(x)
		x = y.Scale(1 / y.Norm())

		lam := rayleigh(a, x)
		est.Value = lam
		est.Iterations = i + 1
		est.History = append(est.History, lam)

		if math.Abs(lam-prev) < tol {
			est.Converged = true
			break
		}
		prev = lam
	}

	est.Vector = x
	return est
}

// InversePower converges to the eigenvalue of smallest magnitude by
// solving A y = x at every iteration.
func InversePower(a numeric.Matrix, x0 numeric.Vector, tol float64, maxIter int) (Estimate, error) {
	x := x0.Clone()
	est := Estimate{History: make([]float64, 0)}
	prev := 0.0

	for i := 0; i < maxIter; i++ {
		y, err := verify.Solve(a, x)
		if err != nil {
			return est, fmt.Errorf("inverse power iteration %d: %w", i+1, err)
		}
		x = y.Scale(1 / y.Norm())

		lam := rayleigh(a, x)
		est.Value = lam
		est.Iterations = i + 1
		est.History = append(est.History, lam)

		if i > 0 && math.Abs(lam-prev) < tol {
			est.Converged = true
			break
		}
		prev = lam
	}

	est.Vector = x
	return est, nil
}
