package numeric

import "math"

// Func is a scalar function of one variable: an integrand or a fixed-point map.
type Func func(x float64) float64

// Func2 is the right-hand side f(x, y) of y' = f(x, y).
type Func2 func(x, y float64) float64

type Vector []float64

func NewVector(n int) Vector {
	return make(Vector, n)
}

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func (v Vector) Dot(other Vector) float64 {
	sum := 0.0
	for i := range v {
		if i < len(other) {
			sum += v[i] * other[i]
		}
	}
	return sum
}

func (v Vector) Add(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] + other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Sub(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] - other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Scale(factor float64) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

// Abs returns the element-wise absolute value.
func (v Vector) Abs() Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = math.Abs(v[i])
	}
	return result
}

// Matrix is a small dense row-major matrix.
type Matrix [][]float64

func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

func (m Matrix) At(i, j int) float64 { return m[i][j] }

func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i := range m {
		c[i] = make([]float64, len(m[i]))
		copy(c[i], m[i])
	}
	return c
}

// Col returns a copy of column j.
func (m Matrix) Col(j int) Vector {
	col := make(Vector, len(m))
	for i := range m {
		col[i] = m[i][j]
	}
	return col
}

func (m Matrix) SetCol(j int, v Vector) {
	for i := range m {
		m[i][j] = v[i]
	}
}

func (m Matrix) MulVec(x Vector) Vector {
	rows, cols := m.Dims()
	result := make(Vector, rows)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols && j < len(x); j++ {
			sum += m[i][j] * x[j]
		}
		result[i] = sum
	}
	return result
}

func (m Matrix) Mul(other Matrix) Matrix {
	rows, inner := m.Dims()
	_, cols := other.Dims()
	result := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			mik := m[i][k]
			for j := 0; j < cols; j++ {
				result[i][j] += mik * other[k][j]
			}
		}
	}
	return result
}

func (m Matrix) Add(other Matrix) Matrix {
	result := m.Clone()
	for i := range result {
		for j := range result[i] {
			result[i][j] += other[i][j]
		}
	}
	return result
}

func (m Matrix) Sub(other Matrix) Matrix {
	result := m.Clone()
	for i := range result {
		for j := range result[i] {
			result[i][j] -= other[i][j]
		}
	}
	return result
}

func (m Matrix) Scale(factor float64) Matrix {
	result := m.Clone()
	for i := range result {
		for j := range result[i] {
			result[i][j] *= factor
		}
	}
	return result
}

func (m Matrix) Transpose() Matrix {
	rows, cols := m.Dims()
	t := NewMatrix(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

func (m Matrix) FrobeniusNorm() float64 {
	sum := 0.0
	for i := range m {
		for _, v := range m[i] {
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}

// MaxAbsDiff returns the largest entrywise |m - other|.
func (m Matrix) MaxAbsDiff(other Matrix) float64 {
	maxDiff := 0.0
	for i := range m {
		for j := range m[i] {
			maxDiff = math.Max(maxDiff, math.Abs(m[i][j]-other[i][j]))
		}
	}
	return maxDiff
}

// IsSymmetric compares m with its transpose using allclose semantics:
// |a - b| <= atol + rtol*|b| for every entry.
func (m Matrix) IsSymmetric(rtol, atol float64) bool {
	rows, cols := m.Dims()
	if rows != cols {
		return false
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a, b := m[i][j], m[j][i]
			if math.Abs(a-b) > atol+rtol*math.Abs(b) {
				return false
			}
		}
	}
	return true
}

// IsDiagonallyDominant reports whether each |a_ii| exceeds the sum of the
// other magnitudes in its row.
func (m Matrix) IsDiagonallyDominant() bool {
	for i := range m {
		off := 0.0
		for j, v := range m[i] {
			if j != i {
				off += math.Abs(v)
			}
		}
		if math.Abs(m[i][i]) <= off {
			return false
		}
	}
	return true
}
