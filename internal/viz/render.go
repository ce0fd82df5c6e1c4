package viz

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/numlab/internal/report"
)

const (
	DefaultPlotWidth  = 60
	DefaultPlotHeight = 10
	bannerWidth       = 60
)

type Options struct {
	Plot       bool
	Values     bool
	PlotWidth  int
	PlotHeight int
}

// Render prints a report: banner, sections, warnings and, when asked,
// named values and one plot per series.
func Render(w io.Writer, r *report.Report, opts Options) error {
	var b strings.Builder

	b.WriteString(HeaderStyle.Width(bannerWidth).Render(strings.ToUpper(r.Title)) + "\n")

	for _, s := range r.Sections {
		if s.Title != "" {
			b.WriteString("\n" + SectionStyle.Render(s.Title) + "\n")
		}
		for _, line := range s.Lines {
			b.WriteString(line + "\n")
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		for _, warn := range r.Warnings {
			b.WriteString(WarningStyle.Render("warning: ") + warn + "\n")
		}
	}

	if opts.Values && len(r.Values) > 0 {
		b.WriteString("\n" + Separator(bannerWidth) + "\n")
		b.WriteString(ValueTable(r.Values))
	}

	if opts.Plot {
		for _, name := range r.SeriesNames() {
			chart := Plot(name, r.Series[name], opts.PlotWidth, opts.PlotHeight)
			if chart == "" {
				continue
			}
			b.WriteString("\n" + GraphStyle.Render(chart) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ValueTable lists named values sorted by name.
func ValueTable(values map[string]float64) string {
	names := make([]string, 0, len(values))
	width := 0
	for name := range values {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(MetricLabel.Render(fmt.Sprintf("%-*s", width+2, name)))
		b.WriteString(MetricValue.Render(fmt.Sprintf("%.10g", values[name])) + "\n")
	}
	return b.String()
}

// Plot draws one series with asciigraph. Positive series spanning more than
// three decades are drawn on a log10 scale. Series with fewer than two
// finite points produce no chart.
func Plot(name string, data []float64, width, height int) string {
	if width <= 0 {
		width = DefaultPlotWidth
	}
	if height <= 0 {
		height = DefaultPlotHeight
	}

	points := finite(data)
	if len(points) < 2 {
		return ""
	}

	caption := name
	if logScale(points) {
		for i, v := range points {
			points[i] = math.Log10(v)
		}
		caption = "log10 " + name
	}

	return asciigraph.Plot(points,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

func finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func logScale(data []float64) bool {
	lo, hi := math.Inf(1), 0.0
	for _, v := range data {
		if v <= 0 {
			return false
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi/lo > 1e3
}
