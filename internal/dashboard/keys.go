package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridtop/gridtop/internal/widgets"
)

// keyMap holds every dashboard-level key binding. Widget-level navigation
// (up/down in tables) is routed to the focused widget before these apply.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Up       key.Binding
	Down     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select down"),
		),
	}
}

// ShortHelp is the footer line rendered under the widgets.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Expand, k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp is the overlay shown by the help toggle.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.PrevPane, k.Expand, k.Collapse},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// handleKey routes a key press: help toggle first, then the focused widget,
// then the dashboard-level bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case m.showHelp:
		// Any key closes the help overlay
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	// The focused widget gets first refusal on everything else
	switch m.widgets[m.focused].HandleKey(msg, m.widgetContext(m.focused)) {
	case widgets.Handled, widgets.HandledNoRedraw:
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextPane):
		if !m.expanded {
			m.cycleFocus(false)
		}

	case key.Matches(msg, m.keys.PrevPane):
		if !m.expanded {
			m.cycleFocus(true)
		}

	case key.Matches(msg, m.keys.Expand):
		if !m.expanded {
			m.expanded = true
			for _, s := range m.scrolls {
				s.Resized = true
			}
		}

	case key.Matches(msg, m.keys.Collapse):
		if m.expanded {
			m.expanded = false
			for _, s := range m.scrolls {
				s.Resized = true
			}
		}
	}

	return m, nil
}
