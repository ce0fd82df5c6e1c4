package metrics

import "math"

type Final struct {
	name  string
	last  float64
	count int
}

func NewFinal() *Final {
	return &Final{name: "final"}
}

func (f *Final) Name() string { return f.name }

func (f *Final) Observe(iter int, value float64) {
	f.last = value
	f.count++
}

func (f *Final) Value() float64 {
	if f.count == 0 {
		return math.NaN()
	}
	return f.last
}

func (f *Final) Reset() {
	f.last = 0
	f.count = 0
}

// Rate is the geometric mean of successive ratios v_k / v_{k-1}, the
// asymptotic contraction factor of a linearly converging iteration.
// Samples at or below zero end the product.
type Rate struct {
	name    string
	prev    float64
	logSum  float64
	ratios  int
	samples int
	stopped bool
}

func NewRate() *Rate {
	return &Rate{name: "rate"}
}

func (r *Rate) Name() string { return r.name }

func (r *Rate) Observe(iter int, value float64) {
	if r.stopped {
		return
	}
	if value <= 0 {
		r.stopped = true
		return
	}
	if r.samples > 0 {
		r.logSum += math.Log(value / r.prev)
		r.ratios++
	}
	r.prev = value
	r.samples++
}

func (r *Rate) Value() float64 {
	if r.ratios == 0 {
		return math.NaN()
	}
	return math.Exp(r.logSum / float64(r.ratios))
}

func (r *Rate) Reset() {
	*r = Rate{name: r.name}
}

// Monotone is the fraction of steps that did not increase the sample.
type Monotone struct {
	name     string
	prev     float64
	steps    int
	nonRise  int
	observed bool
}

func NewMonotone() *Monotone {
	return &Monotone{name: "monotone"}
}

func (m *Monotone) Name() string { return m.name }

func (m *Monotone) Observe(iter int, value float64) {
	if m.observed {
		m.steps++
		if value <= m.prev {
			m.nonRise++
		}
	}
	m.prev = value
	m.observed = true
}

func (m *Monotone) Value() float64 {
	if m.steps == 0 {
		return 1.0
	}
	return float64(m.nonRise) / float64(m.steps)
}

func (m *Monotone) Reset() {
	*m = Monotone{name: m.name}
}

// StepsTo reports the first iteration whose sample is below the threshold,
// or -1 when none is.
type StepsTo struct {
	name      string
	threshold float64
	first     int
}

func NewStepsTo(threshold float64) *StepsTo {
	return &StepsTo{name: "steps_to_tol", threshold: threshold, first: -1}
}

func (s *StepsTo) Name() string { return s.name }

func (s *StepsTo) Observe(iter int, value float64) {
	if s.first < 0 && math.Abs(value) < s.threshold {
		s.first = iter
	}
}

func (s *StepsTo) Value() float64 {
	return float64(s.first)
}

func (s *StepsTo) Reset() {
	s.first = -1
}
