package integrators

import "github.com/san-kum/numlab/internal/numeric"

// Point is one sample (x, y) of the solution of y' = f(x, y).
type Point struct {
	X float64
	Y float64
}

// Stepper advances y by a single step of size h from x.
type Stepper interface {
	Step(f numeric.Func2, x, y, h float64) float64
}

// Solve takes n steps from (x0, y0) and returns only the final point.
func Solve(s Stepper, f numeric.Func2, x0, y0, h float64, n int) Point {
	x, y := x0, y0
	for i := 0; i < n; i++ {
		y = s.Step(f, x, y, h)
		x += h
	}
	return Point{X: x, Y: y}
}

// Trajectory takes n steps from (x0, y0) and returns all n+1 points,
// starting with the initial one.
func Trajectory(s Stepper, f numeric.Func2, x0, y0, h float64, n int) []Point {
	points := make([]Point, 0, n+1)
	points = append(points, Point{X: x0, Y: y0})

	x, y := x0, y0
	for i := 0; i < n; i++ {
		y = s.Step(f, x, y, h)
		x += h
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// Ys extracts the y column of a trajectory.
func Ys(points []Point) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	return ys
}
