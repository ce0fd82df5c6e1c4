package metrics

// Metric accumulates a summary over an iteration history, one sample per
// iteration (a residual, a step size, an eigenvalue change).
type Metric interface {
	Name() string
	Observe(iter int, value float64)
	Value() float64
	Reset()
}

// Evaluate resets m, feeds it history and returns the summary.
func Evaluate(m Metric, history []float64) float64 {
	m.Reset()
	for i, v := range history {
		m.Observe(i, v)
	}
	return m.Value()
}

// Summarize evaluates every metric over the same history, keyed by name.
func Summarize(history []float64, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = Evaluate(m, history)
	}
	return out
}

// Standard is the metric set reported for residual histories.
func Standard(threshold float64) []Metric {
	return []Metric{NewFinal(), NewRate(), NewMonotone(), NewStepsTo(threshold)}
}
