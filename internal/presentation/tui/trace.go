package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Flag colors, strongest first.
const (
	colorFound     = "#22c55e"
	colorSwapping  = "#ef4444"
	colorComparing = "#eab308"
	colorPivot     = "#f472b6"
	colorSorted    = "#818cf8"
)

// RenderElement formats one element using its strongest flag. Under the
// ASCII profile flags are shown as brackets: [found] *swapping* (comparing)
// |pivot| {sorted}.
func RenderElement(e domain.AnnotatedElement, p termenv.Profile) string {
	v := strconv.Itoa(e.Value)
	if p == termenv.Ascii {
		switch {
		case e.Found:
			return "[" + v + "]"
		case e.Swapping:
			return "*" + v + "*"
		case e.Comparing:
			return "(" + v + ")"
		case e.Pivot:
			return "|" + v + "|"
		case e.Sorted:
			return "{" + v + "}"
		}
		return v
	}

	s := termenv.String(v)
	switch {
	case e.Found:
		s = s.Foreground(p.Color(colorFound)).Bold()
	case e.Swapping:
		s = s.Foreground(p.Color(colorSwapping)).Bold()
	case e.Comparing:
		s = s.Foreground(p.Color(colorComparing))
	case e.Pivot:
		s = s.Foreground(p.Color(colorPivot)).Bold()
	case e.Sorted:
		s = s.Foreground(p.Color(colorSorted))
	}
	return s.String()
}

// RenderStep writes the elements of a step followed by its counters and description.
func RenderStep(w io.Writer, step domain.Step, p termenv.Profile) error {
	cells := make([]string, len(step.Array))
	for i, e := range step.Array {
		cells[i] = RenderElement(e, p)
	}
	_, err := fmt.Fprintf(w, "[%s]  c=%d s=%d  %s\n", strings.Join(cells, " "), step.Comparisons, step.Swaps, step.Description)
	return err
}

// RenderTrace writes every step, numbered from zero, then a totals line.
func RenderTrace(w io.Writer, trace domain.Trace, p termenv.Profile) error {
	for i, step := range trace {
		if _, err := fmt.Fprintf(w, "%3d  ", i); err != nil {
			return err
		}
		if err := RenderStep(w, step, p); err != nil {
			return err
		}
	}
	comparisons, swaps := trace.Totals()
	_, err := fmt.Fprintf(w, "steps: %d  comparisons: %d  swaps: %d\n", len(trace), comparisons, swaps)
	return err
}
