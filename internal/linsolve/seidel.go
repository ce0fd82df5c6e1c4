package linsolve

import "github.com/san-kum/numlab/internal/numeric"

type GaussSeidelSolver struct{}

func NewGaussSeidel() *GaussSeidelSolver { return &GaussSeidelSolver{} }

func (g *GaussSeidelSolver) Name() string { return "gauss-seidel" }

func (g *GaussSeidelSolver) Solve(a numeric.Matrix, b, x0 numeric.Vector, sweeps int) Result {
	return GaussSeidel(a, b, x0, sweeps)
}

// GaussSeidel is SOR with omega = 1: updates are used as soon as they are computed.
func GaussSeidel(a numeric.Matrix, b, x0 numeric.Vector, k int) Result {
	return SOR(a, b, x0, k, 1)
}
