package player

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/algotrace/internal/runtime"
	"github.com/aretw0/algotrace/pkg/complexity"
	"github.com/aretw0/algotrace/pkg/domain"
)

func newPlayer(t *testing.T) Model {
	t.Helper()
	trace, err := runtime.NewEngine().Execute(context.Background(), domain.Bubble, []int{3, 1, 2}, nil)
	require.NoError(t, err)
	meta, err := complexity.Metadata(domain.Bubble)
	require.NoError(t, err)
	return New(trace, meta)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

var (
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	space = tea.KeyMsg{Type: tea.KeySpace}
	quit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	end   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}
)

func TestNavigation(t *testing.T) {
	m := newPlayer(t)
	assert.Equal(t, 0, m.Index())

	m, _ = press(t, m, left)
	assert.Equal(t, 0, m.Index(), "left on the first step stays")

	m, _ = press(t, m, right)
	m, _ = press(t, m, right)
	assert.Equal(t, 2, m.Index())

	m, _ = press(t, m, end)
	assert.Equal(t, 5, m.Index())

	m, _ = press(t, m, right)
	assert.Equal(t, 5, m.Index(), "right on the last step stays")
}

func TestAutoplay(t *testing.T) {
	m := newPlayer(t)

	m, cmd := press(t, m, space)
	require.True(t, m.Playing())
	require.NotNil(t, cmd)

	for i := 1; i <= 5; i++ {
		next, cmd := m.Update(tickMsg{})
		m = next.(Model)
		assert.Equal(t, i, m.Index())
		assert.NotNil(t, cmd)
	}

	next, cmd := m.Update(tickMsg{})
	m = next.(Model)
	assert.False(t, m.Playing(), "autoplay stops at the end")
	assert.Nil(t, cmd)

	m, _ = press(t, m, space)
	assert.True(t, m.Playing())
	assert.Equal(t, 0, m.Index(), "play from the end restarts")

	m, _ = press(t, m, right)
	assert.False(t, m.Playing(), "manual stepping pauses")
}

func TestQuit(t *testing.T) {
	m := newPlayer(t)
	_, cmd := press(t, m, quit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m := newPlayer(t)
	view := m.View()
	assert.Contains(t, view, "Bubble Sort")
	assert.Contains(t, view, "step 1/6")
	assert.Contains(t, view, "Comparing elements at positions 0 and 1")
	assert.Contains(t, view, "comparisons 1")

	m, _ = press(t, m, end)
	assert.Contains(t, m.View(), "Sorting completed!")
}

func TestView_EmptyTrace(t *testing.T) {
	m := New(nil, domain.Metadata{Name: "Quick Sort"})
	assert.Contains(t, m.View(), "No steps to show.")

	m, _ = press(t, m, right)
	assert.Equal(t, 0, m.Index())
}

func TestWindowSize(t *testing.T) {
	m := newPlayer(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 116, m.progress.Width)
}
