package roots

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// FixedPoint solves x = g(x) by repeated application of g, stopping once
// |x_{k+1} - x_k| <= tol or after maxIter applications.
func FixedPoint(g numeric.Func, x0, tol float64, maxIter int) Result {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	res := Result{
		Root:    x0,
		Step:    math.Inf(1),
		History: []float64{x0},
	}

	x := x0
	for res.Iterations < maxIter && res.Step > tol {
		next := g(x)
		res.Step = math.Abs(next - x)
		x = next
		res.Iterations++
		res.History = append(res.History, x)
	}

	res.Root = x
	res.Converged = res.Step <= tol
	return res
}
