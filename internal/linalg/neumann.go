package linalg

import "github.com/san-kum/numlab/internal/numeric"

// NeumannResult is the outcome of the iterative inversion. Residuals holds
// ||I - A X_k||_F for every iteration that was checked.
type NeumannResult struct {
	X          numeric.Matrix
	Iterations int
	Residual   float64
	Converged  bool
	Residuals  []float64
}

// Neumann approximates inv(a) by the Newton-Schulz refinement
//
//	X_{k+1} = X_k + X_k (I - A X_k),  X_0 = Aᵀ / ||A||_F²
//
// stopping when ||I - A X_k||_F < tol. Not reaching tol within maxIter is
// reported through Converged, never as an error.
func Neumann(a numeric.Matrix, tol float64, maxIter int) NeumannResult {
	n, _ := a.Dims()
	id := numeric.Identity(n)

	normSq := a.FrobeniusNorm()
	normSq *= normSq
	x := a.Transpose().Scale(1 / normSq)

	res := NeumannResult{Residuals: make([]float64, 0)}

	for res.Iterations = 0; res.Iterations < maxIter; res.Iterations++ {
		r := id.Sub(a.Mul(x))
		res.Residual = r.FrobeniusNorm()
		res.Residuals = append(res.Residuals, res.Residual)

		if res.Residual < tol {
			res.Converged = true
			break
		}
		x = x.Add(x.Mul(r))
	}

	res.X = x
	return res
}
