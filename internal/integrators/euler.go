package integrators

import "github.com/san-kum/numlab/internal/numeric"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

// Step returns y + h f(x, y).
func (e *Euler) Step(f numeric.Func2, x, y, h float64) float64 {
	return y + h*f(x, y)
}

// ModifiedEuler is Heun's predictor-corrector method.
type ModifiedEuler struct{}

func NewModifiedEuler() *ModifiedEuler {
	return &ModifiedEuler{}
}

// Step predicts with an Euler step, then corrects with the mean of the
// slopes at both ends of the step.
func (m *ModifiedEuler) Step(f numeric.Func2, x, y, h float64) float64 {
	k1 := f(x, y)
	predictor := y + h*k1
	k2 := f(x+h, predictor)
	return y + h*(k1+k2)/2
}
