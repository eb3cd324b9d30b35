package player

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/algotrace/pkg/domain"
)

// DefaultInterval is the autoplay delay between steps.
const DefaultInterval = 500 * time.Millisecond

type tickMsg time.Time

// Model steps through a trace one snapshot at a time.
type Model struct {
	trace    domain.Trace
	meta     domain.Metadata
	index    int
	playing  bool
	interval time.Duration

	keys     KeyMap
	help     help.Model
	progress progress.Model
	styles   Styles
	width    int
}

// Option configures the player.
type Option func(*Model)

// WithInterval sets the autoplay delay.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		m.interval = d
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// New creates a player positioned on the first step.
func New(trace domain.Trace, meta domain.Metadata, opts ...Option) Model {
	m := Model{
		trace:    trace,
		meta:     meta,
		interval: DefaultInterval,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		styles:   DefaultStyles(),
		width:    80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run opens the player full screen and blocks until the user quits.
func Run(trace domain.Trace, meta domain.Metadata, opts ...Option) error {
	_, err := tea.NewProgram(New(trace, meta, opts...), tea.WithAltScreen()).Run()
	return err
}

// Index returns the position of the current step.
func (m Model) Index() int { return m.index }

// Playing reports whether autoplay is on.
func (m Model) Playing() bool { return m.playing }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) last() int {
	if len(m.trace) == 0 {
		return 0
	}
	return len(m.trace) - 1
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width-4, 10)
		return m, nil

	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.index >= m.last() {
			m.playing = false
			return m, nil
		}
		m.index++
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.playing = false
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, m.keys.Next):
			m.playing = false
			if m.index < m.last() {
				m.index++
			}
		case key.Matches(msg, m.keys.First):
			m.playing = false
			m.index = 0
		case key.Matches(msg, m.keys.Last):
			m.playing = false
			m.index = m.last()
		case key.Matches(msg, m.keys.Play):
			if m.playing {
				m.playing = false
				return m, nil
			}
			if m.index >= m.last() {
				m.index = 0
			}
			m.playing = true
			return m, m.tick()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	title := m.styles.Title.Render(fmt.Sprintf(" %s ", m.meta.Name))
	if len(m.trace) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.styles.Muted.Render("No steps to show."), "", m.help.View(m.keys))
	}

	step := m.trace[m.index]
	status := "paused"
	if m.playing {
		status = "playing"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ",
		m.styles.Muted.Render(fmt.Sprintf("step %d/%d · %s", m.index+1, len(m.trace), status)),
	)

	var ratio float64
	if m.last() > 0 {
		ratio = float64(m.index) / float64(m.last())
	}

	counters := m.styles.Muted.Render(fmt.Sprintf("comparisons %d   swaps %d", step.Comparisons, step.Swaps))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.renderArray(step),
		"",
		step.Description,
		counters,
		"",
		m.progress.ViewAs(ratio),
		"",
		m.help.View(m.keys),
	)
}

func (m Model) renderArray(step domain.Step) string {
	cells := make([]string, len(step.Array))
	for i, el := range step.Array {
		cells[i] = m.styles.cell(el.Flags).Render(strconv.Itoa(el.Value))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(row)
	}
	return row
}
