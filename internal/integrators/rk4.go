package integrators

import "github.com/san-kum/numlab/internal/numeric"

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f numeric.Func2, x, y, h float64) float64 {
	k1 := f(x, y)
	k2 := f(x+h*0.5, y+h*0.5*k1)
	k3 := f(x+h*0.5, y+h*0.5*k2)
	k4 := f(x+h, y+h*k3)

	return y + h/6.0*(k1+2*k2+2*k3+k4)
}
