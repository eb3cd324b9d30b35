package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/algotrace/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour,
// wrapped at width columns.
func NewRenderer(width int) (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// RenderMarkdown renders markdown at the default width.
func RenderMarkdown(markdown string) (string, error) {
	render, err := NewRenderer(defaultWidth)
	if err != nil {
		return "", err
	}
	return render(markdown)
}

// ComplexityReport describes an analysis as markdown.
func ComplexityReport(a *domain.Analysis) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", a.AlgorithmName)
	fmt.Fprintf(&sb, "Estimated operations for **n = %d**:\n\n", a.ArraySize)
	sb.WriteString("| Case | Class | Operations |\n|---|---|---|\n")
	fmt.Fprintf(&sb, "| best | %s | %d |\n", a.Complexity.TimeBest, a.EstimatedOperations.Best)
	fmt.Fprintf(&sb, "| average | %s | %d |\n", a.Complexity.TimeAverage, a.EstimatedOperations.Average)
	fmt.Fprintf(&sb, "| worst | %s | %d |\n\n", a.Complexity.TimeWorst, a.EstimatedOperations.Worst)
	fmt.Fprintf(&sb, "- Space: %s\n", a.Complexity.Space)
	fmt.Fprintf(&sb, "- Stable: %s\n", yesNo(a.Complexity.Stable))
	fmt.Fprintf(&sb, "- In place: %s\n", yesNo(a.Complexity.InPlace))
	return sb.String()
}
