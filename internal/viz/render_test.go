package viz

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/numlab/internal/report"
)

func sample() *report.Report {
	r := report.New("neumann", "matrix", "Neumann series")
	r.Section("Result")
	r.Printf("converged at iteration 8")
	r.Warn("example warning")
	r.Value("residual", 1e-11)
	r.AddSeries("residual", []float64{1, 1e-2, 1e-5, 1e-11})
	return r
}

func TestRenderSections(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sample(), Options{}); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NEUMANN SERIES", "Result", "converged at iteration 8", "example warning"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "log10 residual") {
		t.Error("plot rendered without Plot option")
	}
}

func TestRenderPlotAndValues(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sample(), Options{Plot: true, Values: true}); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "log10 residual") {
		t.Error("expected log-scaled residual plot")
	}
	if !strings.Contains(out, "1e-11") {
		t.Error("expected value table entry")
	}
}

func TestPlotSkipsShortSeries(t *testing.T) {
	if Plot("x", []float64{1}, 0, 0) != "" {
		t.Error("expected no chart for one point")
	}
	if Plot("x", []float64{math.NaN(), 1, math.Inf(1)}, 0, 0) != "" {
		t.Error("expected no chart with one finite point")
	}
}

func TestPlotLinearScale(t *testing.T) {
	chart := Plot("y", []float64{1, 1.1, 1.22, 1.362}, 20, 5)
	if chart == "" {
		t.Fatal("expected chart")
	}
	if strings.Contains(chart, "log10") {
		t.Error("narrow series should not use log scale")
	}
}

func TestLogScale(t *testing.T) {
	tests := []struct {
		data     []float64
		expected bool
	}{
		{[]float64{1, 1e-4}, true},
		{[]float64{1, 0.5}, false},
		{[]float64{1, 0, 1e-8}, false},
		{[]float64{-1, 1e-8}, false},
	}

	for _, tt := range tests {
		if got := logScale(tt.data); got != tt.expected {
			t.Errorf("logScale(%v) = %v, expected %v", tt.data, got, tt.expected)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 4); got != "────" {
		t.Errorf("expected empty line, got %q", got)
	}
	if Sparkline([]float64{3, 2, 1}, 3) == "" {
		t.Error("expected sparkline")
	}
}
