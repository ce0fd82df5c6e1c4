package roots

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

const DefaultNewtonCap = 100

// NewtonRaphson iterates x <- x - f(x)/f'(x) while the step magnitude is at
// least tol. A zero derivative is not guarded.
func NewtonRaphson(f, df numeric.Func, x0, tol float64, maxIter int) Result {
	if maxIter <= 0 {
		maxIter = DefaultNewtonCap
	}

	x := x0
	h := f(x) / df(x)
	res := Result{History: []float64{x0}}

	for math.Abs(h) >= tol && res.Iterations < maxIter {
		h = f(x) / df(x)
		x -= h
		res.Iterations++
		res.History = append(res.History, x)
	}

	res.Root = x
	res.Step = h
	res.Converged = math.Abs(h) < tol
	return res
}
