package experiment

import (
	"context"
	"math"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/metrics"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/report"
	"github.com/san-kum/numlab/internal/roots"
)

// quadratic has roots -1 and -2.
func quadratic(x float64) float64 { return x*x + 3*x + 2 }

func cubic(x float64) float64 { return x*x*x - x*x + 2 }

func cubicPrime(x float64) float64 { return 3*x*x - 2*x }

type fixedPointCase struct {
	key   string
	label string
	g     numeric.Func
	x0    float64
}

var fixedPointCases = []fixedPointCase{
	{
		key:   "g1",
		label: "g(x) = -(x^2 + 2)/3",
		g:     func(x float64) float64 { return -(x*x + 2) / 3 },
		x0:    -1.5,
	},
	{
		key:   "g2",
		label: "g(x) = -sqrt(-3x - 2)",
		g:     func(x float64) float64 { return -math.Sqrt(-3*x - 2) },
		x0:    -1.2,
	},
}

func rootDrivers() []*Driver {
	return []*Driver{
		{Name: "fixed-point", Family: FamilyRoots, Title: "Fixed-point iteration", Run: runFixedPoint},
		{Name: "newton-raphson", Family: FamilyRoots, Title: "Newton-Raphson method", Run: runNewton},
	}
}

func runFixedPoint(ctx context.Context, cfg *config.Config, r *report.Report) error {
	tol := cfg.Roots.Tolerance
	for _, c := range fixedPointCases {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := roots.FixedPoint(c.g, c.x0, tol, cfg.Roots.MaxIterations)

		r.Section(c.label + ", f(x) = x^2 + 3x + 2")
		for k, x := range res.History {
			r.Printf("Iteration no: %d ** x= %v", k, x)
		}
		r.Printf("root = %.8f after %d iterations", res.Root, res.Iterations)
		r.Printf("f(root) = %.3e", res.Residual(quadratic))

		if !res.Converged {
			r.Warn("%s: step %.3e still above tolerance %.0e after %d iterations", c.key, res.Step, tol, res.Iterations)
		}

		r.Value("root_"+c.key, res.Root)
		r.Value("f_root_"+c.key, res.Residual(quadratic))
		r.Value("iterations_"+c.key, float64(res.Iterations))
		r.AddSeries(c.key, res.History)
		r.AddSeries(c.key+" step", steps(res.History))
	}
	return nil
}

func runNewton(ctx context.Context, cfg *config.Config, r *report.Report) error {
	res := roots.NewtonRaphson(cubic, cubicPrime, -10, cfg.Roots.NewtonTolerance, cfg.Roots.NewtonMaxIter)

	r.Section("f(x) = x^3 - x^2 + 2, x0 = -10")
	r.Printf("The value of the root is : %.4f", res.Root)
	r.Printf("iterations = %d, f(root) = %.3e", res.Iterations, res.Residual(cubic))

	if !res.Converged {
		r.Warn("no convergence within %d iterations, last step %.3e", res.Iterations, res.Step)
	}

	r.Value("root", res.Root)
	r.Value("iterations", float64(res.Iterations))
	r.AddSeries("x", res.History)

	summary := metrics.Summarize(steps(res.History), metrics.Standard(cfg.Roots.NewtonTolerance)...)
	r.Value("step_rate", summary["rate"])
	return nil
}

// steps returns |x_{k+1} - x_k| along a history.
func steps(history []float64) []float64 {
	if len(history) < 2 {
		return nil
	}
	out := make([]float64, len(history)-1)
	for i := 1; i < len(history); i++ {
		out[i-1] = math.Abs(history[i] - history[i-1])
	}
	return out
}
