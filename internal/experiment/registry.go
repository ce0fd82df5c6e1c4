package experiment

import (
	"fmt"
	"sort"
)

type Registry struct {
	drivers map[string]*Driver
	order   []string
}

// NewRegistry returns a registry holding every example driver.
func NewRegistry() *Registry {
	r := &Registry{drivers: make(map[string]*Driver)}

	for _, d := range rootDrivers() {
		r.mustRegister(d)
	}
	for _, d := range linearDrivers() {
		r.mustRegister(d)
	}
	for _, d := range matrixDrivers() {
		r.mustRegister(d)
	}
	for _, d := range quadratureDrivers() {
		r.mustRegister(d)
	}
	for _, d := range odeDrivers() {
		r.mustRegister(d)
	}

	return r
}

func (r *Registry) Register(d *Driver) error {
	if d == nil || d.Name == "" || d.Run == nil {
		return fmt.Errorf("invalid driver")
	}
	if _, ok := r.drivers[d.Name]; ok {
		return fmt.Errorf("driver already registered: %s", d.Name)
	}
	r.drivers[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

func (r *Registry) mustRegister(d *Driver) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (*Driver, error) {
	d, ok := r.drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver: %s", name)
	}
	return d, nil
}

// List returns drivers grouped by family, in registration order within a family.
func (r *Registry) List() []*Driver {
	rank := make(map[string]int, len(Families))
	for i, f := range Families {
		rank[f] = i
	}

	out := make([]*Driver, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.drivers[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, ok := rank[out[i].Family]
		if !ok {
			ri = len(Families)
		}
		rj, ok := rank[out[j].Family]
		if !ok {
			rj = len(Families)
		}
		return ri < rj
	})
	return out
}

func (r *Registry) ListNames() []string {
	drivers := r.List()
	names := make([]string, len(drivers))
	for i, d := range drivers {
		names[i] = d.Name
	}
	return names
}

// Family returns the drivers of one family.
func (r *Registry) Family(family string) []*Driver {
	var out []*Driver
	for _, d := range r.List() {
		if d.Family == family {
			out = append(out, d)
		}
	}
	return out
}
