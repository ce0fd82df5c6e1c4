package series

import (
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/verify"
)

// DefaultNodes is the Gauss-Legendre order used for each Picard integral.
// Iterates of polynomial right-hand sides stay polynomial, so the default
// integrates the first few orders exactly.
const DefaultNodes = 10

// Approximation is one Picard iterate
//
//	φ_0(x) = y0
//	φ_n(x) = y0 + ∫[x0,x] f(t, φ_{n-1}(t)) dt
//
// It owns a pointer to the previous iterate and is never mutated after
// construction, so any iterate can be re-evaluated at any point.
type Approximation struct {
	order int
	prev  *Approximation
	f     numeric.Func2
	x0    float64
	y0    float64
	nodes int
}

// Picard builds φ_n for y' = f(x, y), y(x0) = y0.
func Picard(f numeric.Func2, x0, y0 float64, n, nodes int) *Approximation {
	if nodes <= 0 {
		nodes = DefaultNodes
	}

	phi := &Approximation{f: f, x0: x0, y0: y0, nodes: nodes}
	for i := 1; i <= n; i++ {
		phi = phi.Next()
	}
	return phi
}

// Next returns the following iterate.
func (a *Approximation) Next() *Approximation {
	return &Approximation{
		order: a.order + 1,
		prev:  a,
		f:     a.f,
		x0:    a.x0,
		y0:    a.y0,
		nodes: a.nodes,
	}
}

func (a *Approximation) Order() int { return a.order }

// Previous returns φ_{n-1}, or nil for φ_0.
func (a *Approximation) Previous() *Approximation { return a.prev }

func (a *Approximation) Eval(x float64) float64 {
	if a.prev == nil || x == a.x0 {
		return a.y0
	}

	prev := a.prev
	integrand := func(t float64) float64 {
		return a.f(t, prev.Eval(t))
	}
	return a.y0 + verify.IntegralN(integrand, a.x0, x, a.nodes)
}

// EvalAll evaluates the iterate at every point of xs.
func (a *Approximation) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = a.Eval(x)
	}
	return ys
}
