package eigen

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/numlab/internal/numeric"
)

const (
	symmetryRTol = 1e-5
	symmetryATol = 1e-8

	// equalDiagonal is the |a_pp - a_qq| below which the rotation uses t = 1.
	equalDiagonal = 1e-15
)

// Decomposition holds eigenvalues in descending order with the matching
// eigenvectors as columns of Vectors.
type Decomposition struct {
	Values     numeric.Vector
	Vectors    numeric.Matrix
	Iterations int
	Converged  bool
}

// Vector returns the i-th eigenvector.
func (d *Decomposition) Vector(i int) numeric.Vector {
	return d.Vectors.Col(i)
}

// Residual returns ||A v_i - lambda_i v_i||.
func (d *Decomposition) Residual(a numeric.Matrix, i int) float64 {
	v := d.Vector(i)
	return a.MulVec(v).Sub(v.Scale(d.Values[i])).Norm()
}

// Jacobi diagonalises a symmetric matrix by plane rotations, each one
// annihilating the largest off-diagonal entry, until that entry is below tol.
func Jacobi(a numeric.Matrix, tol float64, maxIter int) (*Decomposition, error) {
	if !a.IsSymmetric(symmetryRTol, symmetryATol) {
		return nil, fmt.Errorf("jacobi eigenvalue method: %w", numeric.ErrNotSymmetric)
	}

	n, _ := a.Dims()
	cur := a.Clone()
	v := numeric.Identity(n)
	d := &Decomposition{}

	// n == 1 has no off-diagonal entries.
	d.Converged = n < 2
	for ; !d.Converged && d.Iterations < maxIter; d.Iterations++ {
		p, q, maxVal := largestOffDiagonal(cur)
		if maxVal < tol {
			d.Converged = true
			break
		}
		rotate(cur, v, p, q)
	}

	values := make(numeric.Vector, n)
	for i := 0; i < n; i++ {
		values[i] = cur[i][i]
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return values[idx[i]] > values[idx[j]] })

	d.Values = make(numeric.Vector, n)
	d.Vectors = numeric.NewMatrix(n, n)
	for k, i := range idx {
		d.Values[k] = values[i]
		d.Vectors.SetCol(k, v.Col(i))
	}

	return d, nil
}

func largestOffDiagonal(m numeric.Matrix) (p, q int, maxVal float64) {
	p, q = 0, 1
	n := len(m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m[i][j]) > maxVal {
				maxVal = math.Abs(m[i][j])
				p, q = i, j
			}
		}
	}
	return p, q, maxVal
}

// rotate applies the rotation zeroing a[p][q] to a in place and accumulates it into v.
func rotate(a, v numeric.Matrix, p, q int) {
	var t float64
	if math.Abs(a[p][p]-a[q][q]) < equalDiagonal {
		t = 1
	} else {
		tau := (a[q][q] - a[p][p]) / (2 * a[p][q])
		t = sign(tau) / (math.Abs(tau) + math.Sqrt(1+tau*tau))
	}

	c := 1 / math.Sqrt(1+t*t)
	s := t * c

	app, aqq, apq := a[p][p], a[q][q], a[p][q]

	a[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
	a[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
	a[p][q] = 0
	a[q][p] = 0

	for i := range a {
		if i != p && i != q {
			aip, aiq := a[i][p], a[i][q]
			a[i][p] = c*aip - s*aiq
			a[p][i] = a[i][p]
			a[i][q] = s*aip + c*aiq
			a[q][i] = a[i][q]
		}
	}

	for i := range v {
		vip, viq := v[i][p], v[i][q]
		v[i][p] = c*vip - s*viq
		v[i][q] = s*vip + c*viq
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
