package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/integrators"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/report"
	"github.com/san-kum/numlab/internal/series"
)

// The example initial value problem y' = x + y, y(0) = 1.
const (
	odeX0 = 0.0
	odeY0 = 1.0
)

func odeRHS(x, y float64) float64 { return x + y }

// odeExact is the closed-form solution 2e^x - x - 1.
func odeExact(x float64) float64 { return 2*math.Exp(x) - x - 1 }

// taylorDerivatives are y' through y'''' expressed in x and y.
func taylorDerivatives() []numeric.Func2 {
	higher := func(x, y float64) float64 { return 1 + (x + y) }
	return []numeric.Func2{odeRHS, higher, higher, higher}
}

func odeDrivers() []*Driver {
	return []*Driver{
		{Name: "euler", Family: FamilyODE, Title: "Euler's method", Run: stepperRun("euler")},
		{Name: "modified-euler", Family: FamilyODE, Title: "Modified Euler (Heun) method", Run: stepperRun("modified-euler")},
		{Name: "picard", Family: FamilyODE, Title: "Picard successive approximation", Run: runPicard},
		{Name: "taylor", Family: FamilyODE, Title: "Taylor series method", Run: runTaylor},
	}
}

func stepperRun(name string) RunFunc {
	return func(ctx context.Context, cfg *config.Config, r *report.Report) error {
		s, err := integrators.Get(name)
		if err != nil {
			return err
		}
		h, n := cfg.ODE.Step, cfg.ODE.Steps

		final := integrators.Solve(s, odeRHS, odeX0, odeY0, h, n)
		r.Section(fmt.Sprintf("y' = x + y, y(0) = 1, h = %g, n = %d", h, n))
		r.Printf("Final point: x = %v, y = %v", final.X, final.Y)
		r.Printf("Exact: %.6f, Error: %.6e", odeExact(final.X), math.Abs(final.Y-odeExact(final.X)))

		points := integrators.Trajectory(s, odeRHS, odeX0, odeY0, h, n)
		r.Section("All points")
		exact := make([]float64, len(points))
		for i, p := range points {
			r.Printf("x = %.1f, y = %.6f", p.X, p.Y)
			exact[i] = odeExact(p.X)
		}

		r.Value("x", final.X)
		r.Value("y", final.Y)
		r.Value("error", math.Abs(final.Y-odeExact(final.X)))
		r.AddSeries("y", integrators.Ys(points))
		r.AddSeries("exact", exact)
		return nil
	}
}

func runPicard(ctx context.Context, cfg *config.Config, r *report.Report) error {
	xStar := cfg.ODE.Target
	order := cfg.ODE.PicardOrder

	phi := series.Picard(odeRHS, odeX0, odeY0, order, cfg.ODE.PicardNodes)
	value := phi.Eval(xStar)
	exact := odeExact(xStar)

	r.Section("y' = x + y, y(0) = 1")
	r.Printf("phi_%d(%v) = %v", order, xStar, value)
	r.Printf("Exact: %v", exact)
	r.Printf("Error: %v", math.Abs(value-exact))

	r.Section("Successive approximations")
	values := make([]float64, 0, order+1)
	for p := phi; p != nil; p = p.Previous() {
		values = append([]float64{p.Eval(xStar)}, values...)
	}
	for k, v := range values {
		r.Printf("phi_%d(%v) = %.10f", k, xStar, v)
	}

	r.Value("value", value)
	r.Value("error", math.Abs(value-exact))
	r.AddSeries("phi", values)
	return nil
}

func runTaylor(ctx context.Context, cfg *config.Config, r *report.Report) error {
	xStar := cfg.ODE.Target
	terms := cfg.ODE.TaylorTerms

	value, err := series.Taylor(taylorDerivatives(), odeX0, odeY0, xStar, terms)
	if err != nil {
		return err
	}
	exact := odeExact(xStar)

	coeffs, err := series.Coefficients(taylorDerivatives(), odeX0, odeY0, terms)
	if err != nil {
		return err
	}

	r.Section("y' = x + y, y(0) = 1")
	r.Printf("derivatives at x0: %s", report.FormatVector(coeffs, 1))
	r.Printf("y(%v) = %v", xStar, value)
	r.Printf("Exact: %v", exact)
	r.Printf("Error: %v", math.Abs(value-exact))

	r.Value("value", value)
	r.Value("error", math.Abs(value-exact))
	r.AddSeries("coefficients", coeffs)
	return nil
}

// Compare runs every stepper on the example problem with the same step size
// and reports final values and errors against the exact solution.
func Compare(ctx context.Context, cfg *config.Config) (*report.Report, error) {
	h, n := cfg.ODE.Step, cfg.ODE.Steps
	r := report.New("compare", FamilyODE, "Stepper comparison")
	r.Section(fmt.Sprintf("y' = x + y, y(0) = 1, h = %g, n = %d", h, n))

	for _, name := range integrators.Names() {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		s, err := integrators.Get(name)
		if err != nil {
			return r, err
		}

		points := integrators.Trajectory(s, odeRHS, odeX0, odeY0, h, n)
		last := points[len(points)-1]
		e := math.Abs(last.Y - odeExact(last.X))

		r.Printf("%-15s y(%.2f) = %.8f  error = %.3e", name, last.X, last.Y, e)
		r.Value("error_"+name, e)

		errs := make([]float64, len(points))
		for i, p := range points {
			errs[i] = math.Abs(p.Y - odeExact(p.X))
		}
		r.AddSeries(name, errs)
	}
	return r, nil
}
