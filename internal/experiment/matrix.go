package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/eigen"
	"github.com/san-kum/numlab/internal/linalg"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/report"
	"github.com/san-kum/numlab/internal/verify"
)

// tridiagonal is the symmetric example used by the eigenvalue and
// inversion drivers. Its eigenvalues are 4 and 4 ± sqrt(2).
func tridiagonal() numeric.Matrix {
	return numeric.Matrix{{4, 1, 0}, {1, 4, 1}, {0, 1, 4}}
}

func luExample() numeric.Matrix {
	return numeric.Matrix{{4, 3, 0}, {3, 4, -1}, {0, -1, 4}}
}

func matrixDrivers() []*Driver {
	return []*Driver{
		{Name: "jacobi-eigen", Family: FamilyMatrix, Title: "Jacobi eigenvalue method", Run: jacobiEigen(tridiagonal())},
		{Name: "power", Family: FamilyMatrix, Title: "Power and inverse power iteration", Run: runPower},
		{Name: "lu", Family: FamilyMatrix, Title: "LU factorization", Run: runLU},
		{Name: "neumann", Family: FamilyMatrix, Title: "Iterative inversion (Neumann series)", Run: runNeumann},
	}
}

func jacobiEigen(a numeric.Matrix) RunFunc {
	return func(ctx context.Context, cfg *config.Config, r *report.Report) error {
		r.Section("Input")
		r.Matrix("A =", a)

		dec, err := eigen.Jacobi(a, cfg.Eigen.Tolerance, cfg.Eigen.RotationMaxIter)
		if err != nil {
			return err
		}

		r.Section(fmt.Sprintf("Rotations: %d", dec.Iterations))
		for i, lam := range dec.Values {
			r.Printf("λ%d = %.10f", i+1, lam)
			r.Vector(fmt.Sprintf("v%d =", i+1), dec.Vector(i))
			res := dec.Residual(a, i)
			r.Printf("||A·v%d - λ%d·v%d|| = %.2e", i+1, i+1, i+1, res)
			r.Value(fmt.Sprintf("lambda%d", i+1), lam)
			r.Value(fmt.Sprintf("residual%d", i+1), res)
		}

		if !dec.Converged {
			r.Warn("off-diagonal entries still above %.0e after %d rotations", cfg.Eigen.Tolerance, dec.Iterations)
		}

		ref, err := verify.Eigenvalues(a)
		if err != nil {
			return fmt.Errorf("reference eigenvalues: %w", err)
		}
		r.Section("Reference (gonum)")
		r.Printf("eigenvalues %s", report.FormatVector(ref, 10))
		r.AddSeries("eigenvalues", dec.Values)
		return nil
	}
}

func runPower(ctx context.Context, cfg *config.Config, r *report.Report) error {
	a := tridiagonal()
	n, _ := a.Dims()
	rng := rand.New(rand.NewSource(cfg.Eigen.Seed))
	every := cfg.Eigen.ProgressEvery

	r.Section("Input")
	r.Matrix("A =", a)

	largest := eigen.Power(a, eigen.RandomStart(n, rng), cfg.Eigen.Tolerance, cfg.Eigen.PowerMaxIter)
	r.Section("Power method (largest eigenvalue)")
	printEstimate(r, a, largest, "λ_max", every)

	if err := ctx.Err(); err != nil {
		return err
	}

	smallest, err := eigen.InversePower(a, eigen.RandomStart(n, rng), cfg.Eigen.Tolerance, cfg.Eigen.PowerMaxIter)
	if err != nil {
		return err
	}
	r.Section("Inverse power method (smallest eigenvalue)")
	printEstimate(r, a, smallest, "λ_min", every)

	ref, err := verify.Eigenvalues(a)
	if err != nil {
		return fmt.Errorf("reference eigenvalues: %w", err)
	}
	r.Section("Reference (gonum)")
	r.Printf("eigenvalues %s", report.FormatVector(ref, 10))

	r.Value("lambda_max", largest.Value)
	r.Value("lambda_min", smallest.Value)
	r.AddSeries("power", largest.History)
	r.AddSeries("inverse power", smallest.History)
	return nil
}

func printEstimate(r *report.Report, a numeric.Matrix, est eigen.Estimate, label string, every int) {
	if every > 0 {
		for i := every; i <= len(est.History); i += every {
			r.Printf("iteration %d: λ ≈ %.10f", i, est.History[i-1])
		}
	}
	if est.Converged {
		r.Printf("converged at iteration %d", est.Iterations)
	} else {
		r.Warn("%s: no convergence within %d iterations", label, est.Iterations)
	}

	r.Printf("%s = %.10f", label, est.Value)
	r.Vector("eigenvector", est.Vector)
	r.Vector("A·v =", a.MulVec(est.Vector))
	r.Vector("λ·v =", est.Vector.Scale(est.Value))
	r.Printf("||A·v - λ·v|| = %.2e", est.Residual(a))
}

func runLU(ctx context.Context, cfg *config.Config, r *report.Report) error {
	a := luExample()
	l, u := linalg.LU(a)

	r.Section("Factorization")
	r.Matrix("A =", a)
	r.Matrix("L =", l)
	r.Matrix("U =", u)
	r.Matrix("L·U =", l.Mul(u))

	inv := linalg.InverseLU(l, u)
	r.Section("Inverse")
	r.Matrix("A^(-1) =", inv)
	r.Matrix("A·A^(-1) =", a.Mul(inv))

	ref, err := verify.Inverse(a)
	if err != nil {
		return fmt.Errorf("reference inverse: %w", err)
	}
	r.Section("Reference (gonum)")
	r.Matrix("A^(-1) =", ref)

	r.Value("factor_error", l.Mul(u).MaxAbsDiff(a))
	r.Value("inverse_error", inv.MaxAbsDiff(ref))
	return nil
}

func runNeumann(ctx context.Context, cfg *config.Config, r *report.Report) error {
	a := tridiagonal()
	tol := cfg.Eigen.Tolerance

	r.Section("Iteration X_{k+1} = X_k (2I - A X_k)")
	r.Matrix("A =", a)

	res := linalg.Neumann(a, tol, cfg.Eigen.NeumannMaxIter)
	if every := cfg.Eigen.ProgressEvery; every > 0 {
		for i := 0; i < len(res.Residuals); i += every {
			if res.Converged && i == len(res.Residuals)-1 {
				break
			}
			r.Printf("iteration %d: residual norm = %.2e", i, res.Residuals[i])
		}
	}

	if res.Converged {
		r.Printf("converged at iteration %d", res.Iterations)
		r.Printf("residual norm: %.2e", res.Residual)
	} else {
		r.Warn("no convergence within %d iterations, final residual norm %.2e", res.Iterations, res.Residual)
	}

	r.Section("Result")
	r.Matrix("X =", res.X)
	r.Matrix("A·X =", a.Mul(res.X))

	ref, err := verify.Inverse(a)
	if err != nil {
		return fmt.Errorf("reference inverse: %w", err)
	}
	diff := res.X.Sub(ref).FrobeniusNorm()
	r.Section("Reference (gonum)")
	r.Matrix("A^(-1) =", ref)
	r.Printf("||X - A^(-1)||_F = %.3e", diff)

	r.Value("residual", res.Residual)
	r.Value("iterations", float64(res.Iterations))
	r.Value("error", diff)
	r.AddSeries("residual", res.Residuals)
	return nil
}
