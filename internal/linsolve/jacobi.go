package linsolve

import "github.com/san-kum/numlab/internal/numeric"

type JacobiSolver struct{}

func NewJacobi() *JacobiSolver { return &JacobiSolver{} }

func (j *JacobiSolver) Name() string { return "jacobi" }

func (j *JacobiSolver) Solve(a numeric.Matrix, b, x0 numeric.Vector, sweeps int) Result {
	return Jacobi(a, b, x0, sweeps)
}

// Jacobi performs k sweeps where every component of the new iterate is
// computed from the previous iterate only.
func Jacobi(a numeric.Matrix, b, x0 numeric.Vector, k int) Result {
	n := len(b)
	x := x0.Clone()
	next := x0.Clone()
	res := Result{Residuals: make([]float64, 0, k)}

	for iter := 0; iter < k; iter++ {
		for i := 0; i < n; i++ {
			next[i] = (b[i] - offDiagonal(a, x, i)) / a[i][i]
		}
		copy(x, next)
		res.Residuals = append(res.Residuals, residual(a, x, b))
	}

	res.X = x
	return res
}
