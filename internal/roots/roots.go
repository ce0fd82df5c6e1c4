package roots

import "github.com/san-kum/numlab/internal/numeric"

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 1000
)

// Result is the outcome of an iterative root search. Iterations counts
// applications of the update rule; History holds the initial guess followed
// by every iterate.
type Result struct {
	Root       float64
	Iterations int
	Step       float64
	Converged  bool
	History    []float64
}

// Residual evaluates f at the root.
func (r Result) Residual(f numeric.Func) float64 {
	return f(r.Root)
}
