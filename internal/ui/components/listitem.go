package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ListItem is one selectable row: a muted key column and a value.
type ListItem struct {
	BaseComponent
	key      string
	value    string
	keyWidth int
	focused  bool
}

// NewListItem creates a row.
func NewListItem(key, value string) *ListItem {
	return &ListItem{
		BaseComponent: NewBaseComponent(),
		key:           key,
		value:         value,
	}
}

// View renders the row with the default theme.
func (l *ListItem) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row behind a focus gutter.
func (l *ListItem) ViewWithContext(ctx RenderContext) string {
	keyStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Muted)
	if l.keyWidth > 0 {
		keyStyle = keyStyle.Width(l.keyWidth)
	}

	valueStyle := l.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Text)
	if l.focused {
		valueStyle = valueStyle.Bold(true).Foreground(ctx.Theme.Focus)
	}

	return ctx.marker(l.focused) + keyStyle.Render(l.key) + " " + valueStyle.Render(l.value)
}

// WithKeyWidth pads the key column to width cells so values line up.
func (l *ListItem) WithKeyWidth(width int) *ListItem {
	l.keyWidth = width
	return l
}

// WithFocused sets the focus state.
func (l *ListItem) WithFocused(focused bool) *ListItem {
	l.focused = focused
	return l
}

// Key returns the key column text.
func (l *ListItem) Key() string {
	return l.key
}

// Value returns the value text.
func (l *ListItem) Value() string {
	return l.value
}
