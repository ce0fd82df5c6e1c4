package linsolve

import "github.com/san-kum/numlab/internal/numeric"

// Result holds the approximation after the last sweep and the residual norm
// ||A x_k - b|| recorded after every sweep.
type Result struct {
	X         numeric.Vector
	Residuals []float64
}

// Final returns the residual after the last sweep, or -1 when no sweep ran.
func (r Result) Final() float64 {
	if len(r.Residuals) == 0 {
		return -1
	}
	return r.Residuals[len(r.Residuals)-1]
}

// Solver runs a fixed number of sweeps from x0.
type Solver interface {
	Name() string
	Solve(a numeric.Matrix, b, x0 numeric.Vector, sweeps int) Result
}

func residual(a numeric.Matrix, x, b numeric.Vector) float64 {
	return a.MulVec(x).Sub(b).Norm()
}

// offDiagonal returns sum_{j != i} a_ij x_j.
func offDiagonal(a numeric.Matrix, x numeric.Vector, i int) float64 {
	sum := 0.0
	for j := range x {
		if j != i {
			sum += a[i][j] * x[j]
		}
	}
	return sum
}
