package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/quadrature"
	"github.com/san-kum/numlab/internal/report"
	"github.com/san-kum/numlab/internal/verify"
)

// polynomialChecks is the extra integral each rule is expected to get
// exactly (up to rounding) or nearly so.
var polynomialChecks = map[string]quadrature.Integral{
	"simpson13": quadrature.Monomial(3, 0, 2),
	"simpson38": quadrature.Monomial(3, 0, 2),
	"boole":     quadrature.Monomial(5, 0, 2),
	"weddle":    quadrature.Monomial(6, 0, 2),
}

func quadratureDrivers() []*Driver {
	rules := quadrature.Rules()
	drivers := make([]*Driver, 0, len(rules))
	for _, rule := range rules {
		drivers = append(drivers, &Driver{
			Name:   rule.Key,
			Family: FamilyQuadrature,
			Title:  rule.Name + " - numerical integration",
			Run:    quadratureRun(rule),
		})
	}
	return drivers
}

func quadratureRun(rule *quadrature.Rule) RunFunc {
	return func(ctx context.Context, cfg *config.Config, r *report.Report) error {
		for _, in := range quadrature.Standard() {
			if err := integrateAll(r, rule, in, cfg.Subdivisions(rule.Key)); err != nil {
				return err
			}
		}

		check, ok := polynomialChecks[rule.Key]
		if !ok {
			return nil
		}
		return integrateAll(r, rule, check, cfg.CheckSubdivisions(rule.Key))
	}
}

func integrateAll(r *report.Report, rule *quadrature.Rule, in quadrature.Integral, ns []int) error {
	r.Section(in.Name)
	r.Printf("Exact value: %.10f", in.Value)

	errs := make([]float64, 0, len(ns))
	for _, n := range ns {
		got, err := rule.Integrate(in.F, in.A, in.B, n)
		if err != nil {
			return err
		}
		e := math.Abs(got - in.Value)
		r.Printf("n = %4d: %.10f, Error = %.10e", n, got, e)
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		r.Value("error_"+in.Key, errs[len(errs)-1])
	}
	r.AddSeries("error "+in.Key, errs)
	return nil
}

// Quad integrates a named integrand over [a, b] with one rule and compares
// it with a Gauss-Legendre reference.
func Quad(ruleKey, integrand string, a, b float64, n int) (*report.Report, error) {
	rule, err := quadrature.Lookup(ruleKey)
	if err != nil {
		return nil, err
	}
	f, err := quadrature.LookupIntegrand(integrand)
	if err != nil {
		return nil, err
	}

	r := report.New("quad", FamilyQuadrature, rule.Name)
	got, err := rule.Integrate(f, a, b, n)
	if err != nil {
		return r, fmt.Errorf("quad: %w", err)
	}
	ref := verify.Integral(f, a, b)

	r.Section(fmt.Sprintf("∫[%g,%g] %s dx, n = %d", a, b, integrand, n))
	r.Printf("%s: %.12f", rule.Name, got)
	r.Printf("Gauss-Legendre (%d nodes): %.12f", verify.DefaultNodes, ref)
	r.Printf("difference: %.3e", math.Abs(got-ref))

	r.Value("value", got)
	r.Value("reference", ref)
	return r, nil
}
