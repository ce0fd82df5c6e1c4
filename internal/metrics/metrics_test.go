package metrics

import (
	"math"
	"testing"
)

func TestFinal(t *testing.T) {
	m := NewFinal()

	if !math.IsNaN(m.Value()) {
		t.Error("expected NaN before any sample")
	}

	got := Evaluate(m, []float64{3, 2, 1})
	if got != 1 {
		t.Errorf("expected final 1, got %f", got)
	}

	m.Reset()
	if !math.IsNaN(m.Value()) {
		t.Error("expected NaN after reset")
	}
}

func TestRateGeometric(t *testing.T) {
	history := []float64{1, 0.5, 0.25, 0.125, 0.0625}

	got := Evaluate(NewRate(), history)
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected rate 0.5, got %f", got)
	}
}

func TestRateStopsAtZero(t *testing.T) {
	got := Evaluate(NewRate(), []float64{1, 0.1, 0, 5})
	if math.Abs(got-0.1) > 1e-12 {
		t.Errorf("expected rate 0.1, got %f", got)
	}

	if !math.IsNaN(Evaluate(NewRate(), []float64{2})) {
		t.Error("expected NaN rate for a single sample")
	}
}

func TestMonotone(t *testing.T) {
	if got := Evaluate(NewMonotone(), []float64{4, 3, 3, 1}); got != 1 {
		t.Errorf("expected fully monotone history, got %f", got)
	}

	if got := Evaluate(NewMonotone(), []float64{4, 5, 3, 6, 1}); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}
}

func TestStepsTo(t *testing.T) {
	m := NewStepsTo(1e-3)

	if got := Evaluate(m, []float64{1, 1e-2, 1e-4, 1e-6}); got != 2 {
		t.Errorf("expected first crossing at 2, got %f", got)
	}

	if got := Evaluate(m, []float64{1, 1e-2}); got != -1 {
		t.Errorf("expected -1 without crossing, got %f", got)
	}
}

func TestSummarize(t *testing.T) {
	out := Summarize([]float64{1, 0.1, 0.01}, Standard(0.05)...)

	expected := map[string]float64{
		"final":        0.01,
		"rate":         0.1,
		"monotone":     1,
		"steps_to_tol": 2,
	}
	for name, want := range expected {
		got, ok := out[name]
		if !ok {
			t.Errorf("missing metric %s", name)
			continue
		}
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("%s: got %f, expected %f", name, got, want)
		}
	}
}
