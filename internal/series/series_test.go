package series

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/numlab/internal/numeric"
)

func linear(x, y float64) float64 { return x + y }

func TestPicardThirdIterate(t *testing.T) {
	phi := Picard(linear, 0, 1, 3, 0)

	// φ_3(x) = 1 + x + x² + x³/3 + x⁴/24
	closed := func(x float64) float64 {
		return 1 + x + x*x + x*x*x/3 + x*x*x*x/24
	}

	for _, x := range []float64{0, 0.25, 0.5, 1} {
		if got := phi.Eval(x); math.Abs(got-closed(x)) > 1e-10 {
			t.Errorf("φ_3(%.2f) = %.12f, expected %.12f", x, got, closed(x))
		}
	}

	if phi.Order() != 3 {
		t.Errorf("expected order 3, got %d", phi.Order())
	}
}

func TestPicardLeftOfStart(t *testing.T) {
	phi := Picard(linear, 0, 1, 3, 0)

	closed := func(x float64) float64 {
		return 1 + x + x*x + x*x*x/3 + x*x*x*x/24
	}

	for _, x := range []float64{-0.5, -1} {
		if got := phi.Eval(x); math.Abs(got-closed(x)) > 1e-10 {
			t.Errorf("φ_3(%.2f) = %.12f, expected %.12f", x, got, closed(x))
		}
	}
}

func TestPicardLowerIteratesStayValid(t *testing.T) {
	phi := Picard(linear, 0, 1, 3, 0)

	phi1 := phi.Previous().Previous()
	if phi1.Order() != 1 {
		t.Fatalf("expected order 1, got %d", phi1.Order())
	}

	// φ_1(x) = 1 + x + x²/2
	if got := phi1.Eval(1); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("φ_1(1) = %.12f, expected 2.5", got)
	}

	if phi1.Previous().Previous() != nil {
		t.Error("φ_0 should have no predecessor")
	}
}

func TestPicardApproachesExact(t *testing.T) {
	exact := 2*math.E - 2

	prevErr := math.Inf(1)
	for n := 1; n <= 5; n++ {
		err := math.Abs(Picard(linear, 0, 1, n, 0).Eval(1) - exact)
		if err >= prevErr {
			t.Errorf("error did not decrease at order %d: %e >= %e", n, err, prevErr)
		}
		prevErr = err
	}
}

func TestPicardEvalAll(t *testing.T) {
	phi := Picard(linear, 0, 1, 2, 0)
	xs := []float64{0, 0.5, 1}

	ys := phi.EvalAll(xs)
	for i, x := range xs {
		if ys[i] != phi.Eval(x) {
			t.Errorf("EvalAll[%d] = %f, Eval = %f", i, ys[i], phi.Eval(x))
		}
	}
}

func taylorDerivatives() []numeric.Func2 {
	second := func(x, y float64) float64 { return 1 + (x + y) }
	return []numeric.Func2{linear, second, second, second}
}

func TestTaylor(t *testing.T) {
	got, err := Taylor(taylorDerivatives(), 0, 1, 1, 4)
	if err != nil {
		t.Fatalf("taylor failed: %v", err)
	}

	want := 1 + 1 + 1 + 1.0/3.0 + 1.0/12.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("y(1) = %.12f, expected %.12f", got, want)
	}
}

func TestTaylorCoefficients(t *testing.T) {
	c, err := Coefficients(taylorDerivatives(), 0, 1, 4)
	if err != nil {
		t.Fatalf("coefficients failed: %v", err)
	}

	expected := []float64{1, 1, 2, 2, 2}
	for i := range expected {
		if c[i] != expected[i] {
			t.Errorf("coefficient %d: got %f, expected %f", i, c[i], expected[i])
		}
	}
}

func TestTaylorNotEnoughDerivatives(t *testing.T) {
	_, err := Taylor(taylorDerivatives(), 0, 1, 1, 5)
	if !errors.Is(err, numeric.ErrNotEnoughDerivatives) {
		t.Errorf("expected ErrNotEnoughDerivatives, got %v", err)
	}
}
