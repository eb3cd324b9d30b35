package player

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Styles holds the lipgloss styles of the player.
type Styles struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Cell      lipgloss.Style
	Comparing lipgloss.Style
	Swapping  lipgloss.Style
	Pivot     lipgloss.Style
	Sorted    lipgloss.Style
	Found     lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginRight(1)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cell:      cell,
		Comparing: cell.BorderForeground(lipgloss.Color("#eab308")).Foreground(lipgloss.Color("#eab308")),
		Swapping:  cell.BorderForeground(lipgloss.Color("#ef4444")).Foreground(lipgloss.Color("#ef4444")).Bold(true),
		Pivot:     cell.BorderForeground(lipgloss.Color("#f472b6")).Foreground(lipgloss.Color("#f472b6")),
		Sorted:    cell.BorderForeground(lipgloss.Color("#818cf8")).Foreground(lipgloss.Color("#818cf8")),
		Found:     cell.BorderForeground(lipgloss.Color("#22c55e")).Foreground(lipgloss.Color("#22c55e")).Bold(true),
	}
}

func (s Styles) cell(f domain.Flags) lipgloss.Style {
	switch {
	case f.Found:
		return s.Found
	case f.Swapping:
		return s.Swapping
	case f.Comparing:
		return s.Comparing
	case f.Pivot:
		return s.Pivot
	case f.Sorted:
		return s.Sorted
	}
	return s.Cell
}
