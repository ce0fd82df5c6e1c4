// Package viz renders driver reports in the terminal.
//
// [Render] prints a [report.Report] with lipgloss styles: a banner for the
// title, highlighted section headings and warnings. With plotting enabled
// every recorded series is drawn with asciigraph; residual and error
// histories that fall over several decades switch to a log10 axis.
package viz
