package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/report"
)

const (
	FamilyRoots      = "roots"
	FamilyLinear     = "linear"
	FamilyMatrix     = "matrix"
	FamilyQuadrature = "quadrature"
	FamilyODE        = "ode"
)

// Families lists driver families in display order.
var Families = []string{FamilyRoots, FamilyLinear, FamilyMatrix, FamilyQuadrature, FamilyODE}

// RunFunc fills r with the output of one example problem.
type RunFunc func(ctx context.Context, cfg *config.Config, r *report.Report) error

// Driver is one self-contained example: a fixed problem, one algorithm and
// its verification output. Drivers never call each other.
type Driver struct {
	Name   string
	Family string
	Title  string
	Run    RunFunc
}

// Execute runs the driver against cfg and returns its report. The report is
// returned even on failure so partial output can still be shown.
func (d *Driver) Execute(ctx context.Context, cfg *config.Config) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	r := report.New(d.Name, d.Family, d.Title)
	if err := d.Run(ctx, cfg, r); err != nil {
		return r, fmt.Errorf("%s: %w", d.Name, err)
	}
	return r, nil
}
