package integrators

import (
	"fmt"
	"sort"
)

var steppers = map[string]func() Stepper{
	"euler":          func() Stepper { return NewEuler() },
	"modified-euler": func() Stepper { return NewModifiedEuler() },
	"rk4":            func() Stepper { return NewRK4() },
}

func Get(name string) (Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
