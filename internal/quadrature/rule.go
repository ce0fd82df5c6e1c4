package quadrature

import (
	"fmt"
	"sort"

	"github.com/san-kum/numlab/internal/numeric"
)

// Rule is a composite Newton-Cotes formula over a uniform partition. The
// subdivision count must be a multiple of Divisor; interior node i gets
// weight Inner(i), the two end nodes get End, and the sum is scaled by
// Numerator/Denominator * h.
type Rule struct {
	Name        string
	Key         string
	Divisor     int
	End         float64
	Inner       func(i int) float64
	Numerator   float64
	Denominator float64
	// Degree is the highest polynomial degree integrated exactly.
	Degree int
}

// Validate reports whether n subdivisions satisfy the rule's constraint.
func (r *Rule) Validate(n int) error {
	if n < 1 || n%r.Divisor != 0 {
		return &numeric.RuleError{Rule: r.Name, N: n, Divisor: r.Divisor}
	}
	return nil
}

// Integrate approximates the integral of f over [a, b] with n subdivisions.
func (r *Rule) Integrate(f numeric.Func, a, b float64, n int) (float64, error) {
	if err := r.Validate(n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)
	sum := r.End * (f(a) + f(b))
	for i := 1; i < n; i++ {
		sum += r.Inner(i) * f(a+float64(i)*h)
	}

	return sum * r.Numerator * h / r.Denominator, nil
}

// Weights returns the node weights for n subdivisions before scaling.
func (r *Rule) Weights(n int) ([]float64, error) {
	if err := r.Validate(n); err != nil {
		return nil, err
	}
	w := make([]float64, n+1)
	w[0], w[n] = r.End, r.End
	for i := 1; i < n; i++ {
		w[i] = r.Inner(i)
	}
	return w, nil
}

var registry = map[string]*Rule{}

func register(r *Rule) *Rule {
	registry[r.Key] = r
	return r
}

func Lookup(key string) (*Rule, error) {
	r, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown quadrature rule: %s", key)
	}
	return r, nil
}

// Rules returns every registered rule ordered by divisor.
func Rules() []*Rule {
	rules := make([]*Rule, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Divisor < rules[j].Divisor })
	return rules
}
