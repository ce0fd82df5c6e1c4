package optim

import (
	"context"
	"fmt"
	"math"
)

// Objective scores one parameter assignment; lower is better.
type Objective func(params map[string]float64) (float64, error)

// Trial is one evaluated grid point.
type Trial struct {
	Params map[string]float64
	Score  float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Linspace returns n evenly spaced values over [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Search evaluates every grid point and returns the best parameters, their
// score and all trials in visiting order. Points whose objective fails are
// skipped. It stops early with ctx.Err() when the context is cancelled.
func (g *GridSearch) Search(ctx context.Context, objective Objective) (map[string]float64, float64, []Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, nil, fmt.Errorf("optim: %d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}

	s := &search{best: math.Inf(1)}
	if err := g.searchRecursive(ctx, 0, make(map[string]float64), objective, s); err != nil {
		return nil, 0, s.trials, err
	}

	return s.bestParams, s.best, s.trials, nil
}

type search struct {
	best       float64
	bestParams map[string]float64
	trials     []Trial
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	objective Objective,
	s *search,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		val, err := objective(current)
		if err != nil {
			return nil
		}

		s.trials = append(s.trials, Trial{Params: current, Score: val})
		if val < s.best {
			s.best = val
			s.bestParams = make(map[string]float64)
			for k, v := range current {
				s.bestParams[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, objective, s); err != nil {
			return err
		}
	}
	return nil
}
