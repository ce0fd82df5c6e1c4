package linsolve

import (
	"fmt"

	"github.com/san-kum/numlab/internal/numeric"
)

const DefaultOmega = 1.25

type SORSolver struct {
	omega float64
}

func NewSOR(omega float64) *SORSolver {
	if omega == 0 {
		omega = DefaultOmega
	}
	return &SORSolver{omega: omega}
}

func (s *SORSolver) Name() string { return fmt.Sprintf("sor(%.2f)", s.omega) }

func (s *SORSolver) Omega() float64 { return s.omega }

func (s *SORSolver) Solve(a numeric.Matrix, b, x0 numeric.Vector, sweeps int) Result {
	return SOR(a, b, x0, sweeps, s.omega)
}

// SOR performs k in-place sweeps of
//
//	x_i = (1-omega) x_i + omega (b_i - sum_{j!=i} a_ij x_j) / a_ii
func SOR(a numeric.Matrix, b, x0 numeric.Vector, k int, omega float64) Result {
	n := len(b)
	x := x0.Clone()
	res := Result{Residuals: make([]float64, 0, k)}

	for iter := 0; iter < k; iter++ {
		for i := 0; i < n; i++ {
			x[i] = (1-omega)*x[i] + omega*(b[i]-offDiagonal(a, x, i))/a[i][i]
		}
		res.Residuals = append(res.Residuals, residual(a, x, b))
	}

	res.X = x
	return res
}
