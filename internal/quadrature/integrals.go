package quadrature

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Integral is a definite integral with a known value.
type Integral struct {
	Key   string
	Name  string
	A, B  float64
	F     numeric.Func
	Value float64
}

func Square() Integral {
	return Integral{
		Key:   "x2",
		Name:  "∫[0,1] x^2 dx",
		A:     0,
		B:     1,
		F:     func(x float64) float64 { return x * x },
		Value: 1.0 / 3.0,
	}
}

func Sin() Integral {
	return Integral{Key: "sin", Name: "∫[0,π] sin(x) dx", A: 0, B: math.Pi, F: math.Sin, Value: 2}
}

func Exp() Integral {
	return Integral{Key: "exp", Name: "∫[0,1] e^x dx", A: 0, B: 1, F: math.Exp, Value: math.E - 1}
}

func Arctan() Integral {
	return Integral{
		Key:   "arctan",
		Name:  "∫[0,1] 1/(1+x^2) dx",
		A:     0,
		B:     1,
		F:     func(x float64) float64 { return 1 / (1 + x*x) },
		Value: math.Pi / 4,
	}
}

// Monomial returns ∫[a,b] x^degree dx.
func Monomial(degree int, a, b float64) Integral {
	d := float64(degree)
	return Integral{
		Key:   fmt.Sprintf("x%d", degree),
		Name:  fmt.Sprintf("∫[%g,%g] x^%d dx", a, b, degree),
		A:     a,
		B:     b,
		F:     func(x float64) float64 { return math.Pow(x, d) },
		Value: (math.Pow(b, d+1) - math.Pow(a, d+1)) / (d + 1),
	}
}

// Standard returns the integrals every rule is exercised on.
func Standard() []Integral {
	return []Integral{Square(), Sin(), Exp(), Arctan()}
}

// LookupIntegrand resolves the integrand names accepted on the command line.
func LookupIntegrand(name string) (numeric.Func, error) {
	switch name {
	case "x2", "square":
		return Square().F, nil
	case "x3":
		return Monomial(3, 0, 1).F, nil
	case "x5":
		return Monomial(5, 0, 1).F, nil
	case "x6":
		return Monomial(6, 0, 1).F, nil
	case "sin":
		return math.Sin, nil
	case "cos":
		return math.Cos, nil
	case "exp":
		return math.Exp, nil
	case "arctan", "lorentz":
		return Arctan().F, nil
	}
	return nil, fmt.Errorf("unknown integrand: %s", name)
}

func IntegrandNames() []string {
	return []string{"x2", "x3", "x5", "x6", "sin", "cos", "exp", "arctan"}
}
