package tui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/algotrace/internal/runtime"
	"github.com/aretw0/algotrace/pkg/complexity"
	"github.com/aretw0/algotrace/pkg/domain"
)

func TestRenderTrace(t *testing.T) {
	engine := runtime.NewEngine()

	datadriven.RunTest(t, "testdata/render", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "render":
			var algorithm string
			d.ScanArgs(t, "algorithm", &algorithm)

			var target *int
			if d.HasArg("target") {
				var v int
				d.ScanArgs(t, "target", &v)
				target = &v
			}

			var values []int
			for _, f := range strings.Fields(d.Input) {
				v, err := strconv.Atoi(f)
				require.NoError(t, err)
				values = append(values, v)
			}

			trace, err := engine.Execute(context.Background(), domain.AlgorithmID(algorithm), values, target)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			var buf bytes.Buffer
			require.NoError(t, RenderTrace(&buf, trace, termenv.Ascii))
			return buf.String()
		default:
			t.Fatalf("unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestRenderElement_Colors(t *testing.T) {
	el := domain.AnnotatedElement{Element: domain.Element{Value: 7}, Flags: domain.Flags{Found: true, Comparing: true}}

	plain := RenderElement(el, termenv.Ascii)
	assert.Equal(t, "[7]", plain)

	colored := RenderElement(el, termenv.TrueColor)
	assert.Contains(t, colored, "7")
	assert.Contains(t, colored, "\x1b[")
}

func TestProfile_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, termenv.Ascii, Profile(&buf))
	assert.Equal(t, defaultWidth, Width(&buf))
}

func TestPrintBanner_SkipsPipes(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Empty(t, buf.String())

	writeBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), `\__,_|_|\__, |`)
}

func TestPlotCounters(t *testing.T) {
	trace, err := runtime.NewEngine().Execute(context.Background(), domain.Bubble, []int{5, 4, 3, 2, 1}, nil)
	require.NoError(t, err)

	plot := PlotCounters(trace, 5, termenv.Ascii)
	assert.Contains(t, plot, "comparisons and swaps per step")
	assert.NotContains(t, plot, "upper")
	assert.NotContains(t, plot, "\x1b[")
	assert.Contains(t, plot, "10")

	colored := PlotCounters(trace, 5, termenv.ANSI256)
	assert.Contains(t, colored, "comparisons (blue) and swaps (red) per step")
	assert.Contains(t, colored, asciigraph.Blue.String())
	assert.Contains(t, colored, asciigraph.Red.String())

	assert.Empty(t, PlotCounters(trace[:1], 5, termenv.Ascii))
}

func TestPlotCounters_SwapsAboveComparisons(t *testing.T) {
	trace, err := runtime.NewEngine().Execute(context.Background(), domain.Merge, []int{1, 2, 3, 4}, nil)
	require.NoError(t, err)
	comparisons, swaps := trace.Totals()
	require.Greater(t, swaps, comparisons)

	plot := PlotCounters(trace, 5, termenv.Ascii)
	assert.Contains(t, plot, "comparisons and swaps per step")
	assert.NotContains(t, plot, "upper")
}

func TestComplexityTable(t *testing.T) {
	var buf bytes.Buffer
	ComplexityTable(&buf, complexity.All())

	out := buf.String()
	assert.Contains(t, out, "ALGORITHM")
	for _, id := range domain.AlgorithmIDs() {
		assert.Contains(t, out, "| "+id.String())
	}
	assert.Contains(t, out, "Binary Search")
}

func TestHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	HistoryTable(&buf, []domain.ExecutionRecord{{
		ID:            "0f8fad5b-d9cb-469f-a165-70867728950e",
		AlgorithmType: domain.Quick,
		AlgorithmName: "Quick Sort",
		ArraySize:     12,
		Comparisons:   40,
		Swaps:         17,
		Timestamp:     time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local),
	}})

	out := buf.String()
	assert.Contains(t, out, "0f8fad5b ")
	assert.NotContains(t, out, "d9cb")
	assert.Contains(t, out, "Quick Sort")
	assert.Contains(t, out, "2025-01-02 03:04:05")
}

func TestComplexityReport(t *testing.T) {
	info, err := complexity.Lookup(domain.Binary)
	require.NoError(t, err)
	analysis := &domain.Analysis{
		AlgorithmType:       domain.Binary,
		AlgorithmName:       info.Name,
		Complexity:          info.Complexity,
		EstimatedOperations: domain.OperationEstimate{Best: 1, Average: 4, Worst: 4},
		ArraySize:           16,
	}

	md := ComplexityReport(analysis)
	assert.Contains(t, md, "# Binary Search")
	assert.Contains(t, md, "| worst | O(log n) | 4 |")

	rendered, err := RenderMarkdown(md)
	require.NoError(t, err)
	assert.Contains(t, rendered, "Binary Search")
	assert.Contains(t, rendered, "O(log n)")
}
