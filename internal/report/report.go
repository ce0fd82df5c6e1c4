// Package report is the output model shared by every driver. A driver fills
// a Report; rendering, plotting and persistence read it back.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/numlab/internal/numeric"
)

type Section struct {
	Title string
	Lines []string
}

type Report struct {
	Driver    string
	Family    string
	Title     string
	CreatedAt time.Time
	Sections  []*Section
	Values    map[string]float64
	Series    map[string][]float64
	Warnings  []string

	order   []string
	current *Section
}

func New(driver, family, title string) *Report {
	return &Report{
		Driver:    driver,
		Family:    family,
		Title:     title,
		CreatedAt: time.Now(),
		Values:    make(map[string]float64),
		Series:    make(map[string][]float64),
	}
}

// Section starts a new section; subsequent lines go into it.
func (r *Report) Section(title string) {
	r.current = &Section{Title: title}
	r.Sections = append(r.Sections, r.current)
}

func (r *Report) Printf(format string, args ...interface{}) {
	if r.current == nil {
		r.Section("")
	}
	r.current.Lines = append(r.current.Lines, fmt.Sprintf(format, args...))
}

// Vector prints a labelled vector line.
func (r *Report) Vector(label string, v numeric.Vector) {
	r.Printf("%s %s", label, FormatVector(v, 6))
}

// Matrix prints a label followed by one line per row.
func (r *Report) Matrix(label string, m numeric.Matrix) {
	r.Printf("%s", label)
	for _, row := range m {
		r.Printf("  %s", FormatVector(row, 6))
	}
}

func (r *Report) Value(name string, v float64) {
	r.Values[name] = v
}

// AddSeries records a named sequence for plotting and persistence. Adding a
// name twice replaces the data but keeps its original position.
func (r *Report) AddSeries(name string, values []float64) {
	if _, ok := r.Series[name]; !ok {
		r.order = append(r.order, name)
	}
	data := make([]float64, len(values))
	copy(data, values)
	r.Series[name] = data
}

// SeriesNames returns series names in insertion order.
func (r *Report) SeriesNames() []string {
	if len(r.order) != len(r.Series) {
		r.order = sortedKeys(r.Series)
	}
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Report) Warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Lines flattens every section into plain text lines.
func (r *Report) Lines() []string {
	var out []string
	for _, s := range r.Sections {
		if s.Title != "" {
			out = append(out, s.Title)
		}
		out = append(out, s.Lines...)
	}
	return out
}

func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// FormatVector prints v as [a b c] with prec decimals.
func FormatVector(v []float64, prec int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.*f", prec, x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func sortedKeys(m map[string][]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
