package tui

import (
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"

	"github.com/aretw0/algotrace/pkg/domain"
)

// PlotCounters plots the running comparison and swap counters of a trace.
// Either series may lie above the other, so colored profiles tell them apart
// by color and the plain caption names no position.
// Traces with fewer than two steps have nothing to plot.
func PlotCounters(trace domain.Trace, height int, profile termenv.Profile) string {
	if len(trace) < 2 {
		return ""
	}
	comparisons := make([]float64, len(trace))
	swaps := make([]float64, len(trace))
	for i, step := range trace {
		comparisons[i] = float64(step.Comparisons)
		swaps[i] = float64(step.Swaps)
	}

	opts := []asciigraph.Option{asciigraph.Height(height)}
	if profile == termenv.Ascii {
		opts = append(opts, asciigraph.Caption("comparisons and swaps per step"))
	} else {
		opts = append(opts,
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
			asciigraph.Caption("comparisons (blue) and swaps (red) per step"),
		)
	}
	return asciigraph.PlotMany([][]float64{comparisons, swaps}, opts...)
}
