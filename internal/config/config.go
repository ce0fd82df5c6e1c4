package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRootTolerance   = 1e-5
	DefaultRootMaxIter     = 500
	DefaultNewtonTolerance = 1e-4
	DefaultNewtonMaxIter   = 100
	DefaultJacobiSweeps    = 25
	DefaultSweeps          = 10
	DefaultOmega           = 1.25
	DefaultEigenTolerance  = 1e-10
	DefaultRotationMaxIter = 10000
	DefaultPowerMaxIter    = 1000
	DefaultProgressEvery   = 100
	DefaultSeed            = 42
	DefaultStep            = 0.1
	DefaultSteps           = 10
	DefaultPicardOrder     = 3
	DefaultTaylorTerms     = 4
	DefaultPicardNodes     = 10
)

type Config struct {
	Roots      RootsConfig      `yaml:"roots"`
	Linear     LinearConfig     `yaml:"linear"`
	Eigen      EigenConfig      `yaml:"eigen"`
	Quadrature QuadratureConfig `yaml:"quadrature"`
	ODE        ODEConfig        `yaml:"ode"`
}

type RootsConfig struct {
	Tolerance       float64 `yaml:"tolerance"`
	MaxIterations   int     `yaml:"max_iterations"`
	NewtonTolerance float64 `yaml:"newton_tolerance"`
	NewtonMaxIter   int     `yaml:"newton_max_iterations"`
}

type LinearConfig struct {
	JacobiSweeps int     `yaml:"jacobi_sweeps"`
	Sweeps       int     `yaml:"sweeps"`
	Omega        float64 `yaml:"omega"`
	OmegaMin     float64 `yaml:"omega_min"`
	OmegaMax     float64 `yaml:"omega_max"`
	OmegaPoints  int     `yaml:"omega_points"`
}

type EigenConfig struct {
	Tolerance       float64 `yaml:"tolerance"`
	RotationMaxIter int     `yaml:"rotation_max_iterations"`
	PowerMaxIter    int     `yaml:"power_max_iterations"`
	NeumannMaxIter  int     `yaml:"neumann_max_iterations"`
	ProgressEvery   int     `yaml:"progress_every"`
	Seed            int64   `yaml:"seed"`
}

type QuadratureConfig struct {
	// Subdivisions lists the n values each rule is run with, keyed by rule.
	Subdivisions map[string][]int `yaml:"subdivisions"`
	// Check lists the n values for the rule's polynomial check.
	Check map[string][]int `yaml:"check"`
}

type ODEConfig struct {
	Step        float64 `yaml:"step"`
	Steps       int     `yaml:"steps"`
	PicardOrder int     `yaml:"picard_order"`
	PicardNodes int     `yaml:"picard_nodes"`
	TaylorTerms int     `yaml:"taylor_terms"`
	Target      float64 `yaml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Roots: RootsConfig{
			Tolerance:       DefaultRootTolerance,
			MaxIterations:   DefaultRootMaxIter,
			NewtonTolerance: DefaultNewtonTolerance,
			NewtonMaxIter:   DefaultNewtonMaxIter,
		},
		Linear: LinearConfig{
			JacobiSweeps: DefaultJacobiSweeps,
			Sweeps:       DefaultSweeps,
			Omega:        DefaultOmega,
			OmegaMin:     1.0,
			OmegaMax:     1.9,
			OmegaPoints:  19,
		},
		Eigen: EigenConfig{
			Tolerance:       DefaultEigenTolerance,
			RotationMaxIter: DefaultRotationMaxIter,
			PowerMaxIter:    DefaultPowerMaxIter,
			NeumannMaxIter:  DefaultPowerMaxIter,
			ProgressEvery:   DefaultProgressEvery,
			Seed:            DefaultSeed,
		},
		Quadrature: QuadratureConfig{
			Subdivisions: map[string][]int{
				"trapezoidal": {1, 10, 100, 1000},
				"simpson13":   {2, 10, 100, 1000},
				"simpson38":   {3, 12, 99, 999},
				"boole":       {4, 12, 100, 1000},
				"weddle":      {6, 12, 96, 996},
			},
			Check: map[string][]int{
				"simpson13": {2, 10, 100},
				"simpson38": {3, 12, 99},
				"boole":     {4, 12, 100},
				"weddle":    {6, 12, 96},
			},
		},
		ODE: ODEConfig{
			Step:        DefaultStep,
			Steps:       DefaultSteps,
			PicardOrder: DefaultPicardOrder,
			PicardNodes: DefaultPicardNodes,
			TaylorTerms: DefaultTaylorTerms,
			Target:      1.0,
		},
	}
}

// Load overlays the YAML file at path on the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver overlays the YAML file at path on base, which is modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Roots.Tolerance <= 0 || c.Roots.NewtonTolerance <= 0:
		return fmt.Errorf("roots: tolerances must be positive")
	case c.Roots.MaxIterations <= 0 || c.Roots.NewtonMaxIter <= 0:
		return fmt.Errorf("roots: iteration caps must be positive")
	case c.Linear.JacobiSweeps < 0 || c.Linear.Sweeps < 0:
		return fmt.Errorf("linear: sweeps must not be negative")
	case c.Linear.Omega <= 0 || c.Linear.Omega >= 2:
		return fmt.Errorf("linear: omega must lie in (0, 2), got %g", c.Linear.Omega)
	case c.Eigen.Tolerance <= 0:
		return fmt.Errorf("eigen: tolerance must be positive")
	case c.ODE.Step <= 0:
		return fmt.Errorf("ode: step must be positive")
	case c.ODE.Steps < 0 || c.ODE.PicardOrder < 0 || c.ODE.TaylorTerms < 0:
		return fmt.Errorf("ode: counts must not be negative")
	}
	return nil
}

// Subdivisions returns the n values configured for a rule key.
func (c *Config) Subdivisions(rule string) []int {
	return c.Quadrature.Subdivisions[rule]
}

// CheckSubdivisions returns the n values for a rule's polynomial check.
func (c *Config) CheckSubdivisions(rule string) []int {
	return c.Quadrature.Check[rule]
}
