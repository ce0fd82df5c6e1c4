package linalg

import "github.com/san-kum/numlab/internal/numeric"

// LU factors a = l*u by Doolittle elimination without pivoting. l has a unit
// diagonal. A zero pivot is not detected.
func LU(a numeric.Matrix) (l, u numeric.Matrix) {
	n, _ := a.Dims()
	l = numeric.Identity(n)
	u = a.Clone()

	for k := 0; k < n-1; k++ {
		for i := k + 1; i < n; i++ {
			l[i][k] = u[i][k] / u[k][k]
			for j := k; j < n; j++ {
				u[i][j] -= l[i][k] * u[k][j]
			}
		}
	}
	return l, u
}

// ForwardSubstitute solves l y = e for lower-triangular l.
func ForwardSubstitute(l numeric.Matrix, e numeric.Vector) numeric.Vector {
	n := len(e)
	y := numeric.NewVector(n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < i; j++ {
			sum += l[i][j] * y[j]
		}
		y[i] = (e[i] - sum) / l[i][i]
	}
	return y
}

// BackSubstitute solves u x = y for upper-triangular u.
func BackSubstitute(u numeric.Matrix, y numeric.Vector) numeric.Vector {
	n := len(y)
	x := numeric.NewVector(n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += u[i][j] * x[j]
		}
		x[i] = (y[i] - sum) / u[i][i]
	}
	return x
}

// InverseLU builds the inverse column by column from the factors.
func InverseLU(l, u numeric.Matrix) numeric.Matrix {
	n, _ := l.Dims()
	inv := numeric.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		e := numeric.NewVector(n)
		e[j] = 1
		inv.SetCol(j, BackSubstitute(u, ForwardSubstitute(l, e)))
	}
	return inv
}
