package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows activity while one or more background listings run.
// It ticks continuously once started and renders nothing when idle.
type Spinner struct {
	spinner spinner.Model
	pending int
	label   string
	styles  spinnerStyles
}

type spinnerStyles struct {
	Message lipgloss.Style
}

// NewSpinner creates an idle spinner.
func NewSpinner(style lipgloss.Style) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style

	return Spinner{
		spinner: s,
		styles:  spinnerStyles{Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252"))},
	}
}

// Init implements tea.Model.
func (s Spinner) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update implements tea.Model.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tick)
		return s, cmd
	}
	return s, nil
}

// View implements tea.Model.
func (s Spinner) View() string {
	if s.pending == 0 {
		return ""
	}
	msg := s.label
	if s.pending > 1 {
		msg = fmt.Sprintf("%s (+%d more)", s.label, s.pending-1)
	}
	return s.spinner.View() + " " + s.styles.Message.Render(msg)
}

// Start registers one more running operation described by label.
func (s *Spinner) Start(label string) {
	s.pending++
	s.label = label
}

// Stop registers the end of one operation.
func (s *Spinner) Stop() {
	if s.pending > 0 {
		s.pending--
	}
}

// Active reports whether any operation is running.
func (s Spinner) Active() bool {
	return s.pending > 0
}
