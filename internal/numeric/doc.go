// Package numeric provides the shared primitives of the numlab routines.
//
// The package defines the small value types every algorithm works on:
//
//   - [Vector]: dense vector with element-wise helpers
//   - [Matrix]: small dense row-major matrix (2×2 and 3×3 in practice)
//   - [Func], [Func2]: scalar functions passed to quadrature, root-finding and ODE routines
//
// Routines never guard divisions by diagonal entries, pivots or derivatives;
// inputs are expected to be well conditioned by construction.
//
// # Example
//
//	a := numeric.Matrix{{10, 1, 1}, {1, 10, 1}, {1, 1, 10}}
//	b := numeric.Vector{12, 12, 12}
//	res := linsolve.GaussSeidel(a, b, numeric.NewVector(3), 10)
//	fmt.Println(a.MulVec(res.X).Sub(b).Norm())
//
// # Thread Safety
//
// Values are owned by the caller. Routines copy their inputs before mutating.
package numeric
