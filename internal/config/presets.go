package config

import "sort"

// Presets adjust the defaults in place.
var Presets = map[string]func(*Config){
	"classroom": func(c *Config) {},
	"precise": func(c *Config) {
		c.Roots.Tolerance = 1e-10
		c.Roots.NewtonTolerance = 1e-12
		c.Linear.JacobiSweeps = 100
		c.Linear.Sweeps = 50
		c.Eigen.Tolerance = 1e-14
		c.ODE.Step = 0.01
		c.ODE.Steps = 100
		c.ODE.PicardOrder = 5
		c.ODE.PicardNodes = 12
	},
	"coarse": func(c *Config) {
		c.Roots.Tolerance = 1e-3
		c.Roots.NewtonTolerance = 1e-2
		c.Linear.JacobiSweeps = 5
		c.Linear.Sweeps = 3
		c.Eigen.Tolerance = 1e-6
		c.ODE.Step = 0.25
		c.ODE.Steps = 4
		c.ODE.PicardOrder = 1
		c.ODE.TaylorTerms = 2
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
