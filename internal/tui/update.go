package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
)

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Dismiss):
		m.setError("")
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Toggle):
		m.activateToggle()
	case key.Matches(msg, m.keys.Add):
		m.addNumber()
	case key.Matches(msg, m.keys.Activate):
		m.activateFocused()
	default:
		if m.logger != nil {
			m.logger.Debug(m.ctx, "unbound key", "key", msg.String())
		}
	}
	return m, nil
}

func (m *Model) activateFocused() {
	switch {
	case m.focus == FocusToggle:
		m.activateToggle()
	case m.focus == FocusAdd:
		m.addNumber()
	default:
		m.selectEntry(m.focus - FocusAdd - 1)
	}
}

func (m *Model) activateToggle() {
	m.service.ActivateToggle(m.ctx)
}

func (m *Model) addNumber() {
	if _, err := m.service.AddNumber(m.ctx); err != nil {
		snap := m.service.Snapshot()
		m.setError(describeError(err, snap.Min, snap.Max))
		return
	}
	m.setError("")
}

func (m *Model) selectEntry(index int) {
	entries := m.service.Snapshot().Entries
	if index < 0 || index >= len(entries) {
		return
	}
	if _, err := m.service.SelectEntry(m.ctx, entries[index].ID); err != nil {
		m.setError(err.Error())
	}
}

// describeError turns a failed add into banner text.
func describeError(err error, min, max int) string {
	if errors.Is(err, widget.ErrExhausted) {
		return fmt.Sprintf("Every number from %d to %d has been generated", min, max)
	}
	return err.Error()
}
