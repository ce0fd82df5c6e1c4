package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/linsolve"
	"github.com/san-kum/numlab/internal/metrics"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/optim"
	"github.com/san-kum/numlab/internal/report"
	"github.com/san-kum/numlab/internal/verify"
)

// System is a linear system A x = b with its starting guess.
type System struct {
	A  numeric.Matrix
	B  numeric.Vector
	X0 numeric.Vector
}

func jacobiSystem() System {
	return System{
		A:  numeric.Matrix{{2, 1}, {5, 7}},
		B:  numeric.Vector{11, 13},
		X0: numeric.Vector{1, 1},
	}
}

// dominantSystem has the solution (1, 1, 1).
func dominantSystem() System {
	return System{
		A:  numeric.Matrix{{10, 1, 1}, {1, 10, 1}, {1, 1, 10}},
		B:  numeric.Vector{12, 12, 12},
		X0: numeric.NewVector(3),
	}
}

func linearDrivers() []*Driver {
	return []*Driver{
		{
			Name: "jacobi", Family: FamilyLinear, Title: "Jacobi iteration",
			Run: func(ctx context.Context, cfg *config.Config, r *report.Report) error {
				return runSweeps(r, linsolve.NewJacobi(), jacobiSystem(), cfg.Linear.JacobiSweeps)
			},
		},
		{
			Name: "gauss-seidel", Family: FamilyLinear, Title: "Gauss-Seidel iteration",
			Run: func(ctx context.Context, cfg *config.Config, r *report.Report) error {
				return runSweeps(r, linsolve.NewGaussSeidel(), dominantSystem(), cfg.Linear.Sweeps)
			},
		},
		{
			Name: "sor", Family: FamilyLinear, Title: "Successive over-relaxation",
			Run: func(ctx context.Context, cfg *config.Config, r *report.Report) error {
				return runSweeps(r, linsolve.NewSOR(cfg.Linear.Omega), dominantSystem(), cfg.Linear.Sweeps)
			},
		},
	}
}

func runSweeps(r *report.Report, s linsolve.Solver, sys System, k int) error {
	res := s.Solve(sys.A, sys.B, sys.X0, k)

	r.Section("Problem")
	r.Matrix("A =", sys.A)
	r.Vector("b =", sys.B)
	r.Vector("x0 =", sys.X0)
	r.Printf("k = %d sweeps of %s", k, s.Name())

	ax := sys.A.MulVec(res.X)
	r.Section("Result")
	r.Vector("x =", res.X)
	r.Vector("A·x =", ax)
	r.Vector("b =", sys.B)
	r.Vector("|A·x - b| =", ax.Sub(sys.B).Abs())

	if !sys.A.IsDiagonallyDominant() {
		r.Printf("note: A is not strictly diagonally dominant")
	}

	exact, err := verify.Solve(sys.A, sys.B)
	if err != nil {
		return fmt.Errorf("reference solve: %w", err)
	}
	r.Section("Reference (gonum)")
	r.Vector("x* =", exact)
	r.Printf("||x - x*|| = %.3e", res.X.Sub(exact).Norm())

	if !res.X.IsValid() {
		r.Warn("iterate diverged to a non-finite value")
	}

	summary := metrics.Summarize(res.Residuals, metrics.Standard(1e-6)...)
	r.Value("residual", res.Final())
	r.Value("error", res.X.Sub(exact).Norm())
	r.Value("rate", summary["rate"])
	r.Value("monotone", summary["monotone"])
	r.AddSeries("residual", res.Residuals)
	return nil
}

// TuneSOR sweeps the relaxation factor over grid on the dominant example
// system and reports the factor with the smallest final residual.
func TuneSOR(ctx context.Context, cfg *config.Config, grid []float64) (*report.Report, error) {
	sys := dominantSystem()
	r := report.New("tune-sor", FamilyLinear, "SOR relaxation sweep")

	search := optim.NewGridSearch([]string{"omega"}, [][]float64{grid})
	best, score, trials, err := search.Search(ctx, func(p map[string]float64) (float64, error) {
		res := linsolve.SOR(sys.A, sys.B, sys.X0, cfg.Linear.Sweeps, p["omega"])
		if !res.X.IsValid() {
			return 0, fmt.Errorf("omega %.3f diverged", p["omega"])
		}
		return res.Final(), nil
	})
	if err != nil {
		return r, fmt.Errorf("tune-sor: %w", err)
	}

	r.Section(fmt.Sprintf("Final residual after %d sweeps", cfg.Linear.Sweeps))
	omegas := make([]float64, 0, len(trials))
	scores := make([]float64, 0, len(trials))
	for _, t := range trials {
		r.Printf("omega = %.3f: residual = %.3e", t.Params["omega"], t.Score)
		omegas = append(omegas, t.Params["omega"])
		scores = append(scores, t.Score)
	}

	if best == nil {
		r.Warn("no relaxation factor produced a finite iterate")
		return r, nil
	}

	r.Section("Best")
	r.Printf("omega = %.3f, residual = %.3e", best["omega"], score)
	r.Value("omega", best["omega"])
	r.Value("residual", score)
	r.AddSeries("omega", omegas)
	r.AddSeries("residual", scores)
	return r, nil
}
