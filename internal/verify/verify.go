// Package verify computes reference answers with gonum so the hand-written
// routines can be checked against a direct library computation.
package verify

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/numlab/internal/numeric"
)

// DefaultNodes is the Gauss-Legendre order used by Integral.
const DefaultNodes = 64

var ErrEigenFailed = errors.New("verify: eigen decomposition did not converge")

func ToDense(m numeric.Matrix) *mat.Dense {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		data = append(data, m[i]...)
	}
	return mat.NewDense(rows, cols, data)
}

func FromDense(d mat.Matrix) numeric.Matrix {
	rows, cols := d.Dims()
	m := numeric.NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

func toSym(m numeric.Matrix) (*mat.SymDense, error) {
	rows, cols := m.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: %dx%d is not square", numeric.ErrDimensionMismatch, rows, cols)
	}
	if !m.IsSymmetric(1e-5, 1e-8) {
		return nil, numeric.ErrNotSymmetric
	}
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		data = append(data, m[i]...)
	}
	return mat.NewSymDense(rows, data), nil
}

// Eigenvalues returns the eigenvalues of a symmetric matrix in descending order.
func Eigenvalues(m numeric.Matrix) ([]float64, error) {
	sym, err := toSym(m)
	if err != nil {
		return nil, err
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, ErrEigenFailed
	}

	vals := es.Values(nil)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	return vals, nil
}

func Inverse(m numeric.Matrix) (numeric.Matrix, error) {
	var inv mat.Dense
	if err := inv.Inverse(ToDense(m)); err != nil {
		return nil, fmt.Errorf("verify: inverse: %w", err)
	}
	return FromDense(&inv), nil
}

// Solve returns x with A x = b.
func Solve(a numeric.Matrix, b numeric.Vector) (numeric.Vector, error) {
	rows, _ := a.Dims()
	if rows != len(b) {
		return nil, fmt.Errorf("%w: %d rows, rhs of length %d", numeric.ErrDimensionMismatch, rows, len(b))
	}

	var x mat.VecDense
	if err := x.SolveVec(ToDense(a), mat.NewVecDense(len(b), b.Clone())); err != nil {
		return nil, fmt.Errorf("verify: solve: %w", err)
	}
	return numeric.Vector(x.RawVector().Data), nil
}

// Integral evaluates the definite integral of f over [a, b] with a
// fixed-order Gauss-Legendre rule.
func Integral(f numeric.Func, a, b float64) float64 {
	return IntegralN(f, a, b, DefaultNodes)
}

// IntegralN is Integral with an explicit node count. Reversed limits give
// the negated integral over [b, a].
func IntegralN(f numeric.Func, a, b float64, nodes int) float64 {
	if a == b {
		return 0
	}
	if a > b {
		return -quad.Fixed(f, b, a, nodes, quad.Legendre{}, 0)
	}
	return quad.Fixed(f, a, b, nodes, quad.Legendre{}, 0)
}
