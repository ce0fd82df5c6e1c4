package optim

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestGridSearchFindsMinimum(t *testing.T) {
	g := NewGridSearch(
		[]string{"x", "y"},
		[][]float64{{-1, 0, 1, 2}, {-2, 3}},
	)

	objective := func(p map[string]float64) (float64, error) {
		dx, dy := p["x"]-1, p["y"]-3
		return dx*dx + dy*dy, nil
	}

	best, score, trials, err := g.Search(context.Background(), objective)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if best["x"] != 1 || best["y"] != 3 {
		t.Errorf("expected (1, 3), got %v", best)
	}
	if score != 0 {
		t.Errorf("expected score 0, got %f", score)
	}
	if len(trials) != 8 {
		t.Errorf("expected 8 trials, got %d", len(trials))
	}
}

func TestGridSearchSkipsFailures(t *testing.T) {
	g := NewGridSearch([]string{"w"}, [][]float64{{0.5, 1, 1.5}})

	objective := func(p map[string]float64) (float64, error) {
		if p["w"] == 1 {
			return 0, errors.New("rejected")
		}
		return p["w"], nil
	}

	best, _, trials, err := g.Search(context.Background(), objective)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if best["w"] != 0.5 {
		t.Errorf("expected w=0.5, got %v", best)
	}
	if len(trials) != 2 {
		t.Errorf("expected 2 trials, got %d", len(trials))
	}
}

func TestGridSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGridSearch([]string{"w"}, [][]float64{{1, 2}})
	_, _, _, err := g.Search(ctx, func(map[string]float64) (float64, error) { return 0, nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGridSearchMismatchedRanges(t *testing.T) {
	g := NewGridSearch([]string{"a", "b"}, [][]float64{{1}})
	if _, _, _, err := g.Search(context.Background(), nil); err == nil {
		t.Error("expected error for mismatched ranges")
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(1, 2, 5)
	expected := []float64{1, 1.25, 1.5, 1.75, 2}

	if len(got) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(got))
	}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-12 {
			t.Errorf("value %d: got %f, expected %f", i, got[i], expected[i])
		}
	}

	if Linspace(0, 1, 0) != nil {
		t.Error("expected nil for n=0")
	}
}
