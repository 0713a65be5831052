package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a focusable, labelled control. It only draws itself; activation
// is handled by the page model.
type Button struct {
	BaseComponent
	label      string
	background lipgloss.Color
	foreground lipgloss.Color
	focused    bool
	disabled   bool
}

// NewButton creates a button with the theme's accent as background.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button as "[ label ]" behind a focus gutter.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.computeStyle(ctx.Theme)
	return ctx.marker(b.focused) + "[" + style.Render(b.label) + "]"
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).Padding(0, 1)

	if b.disabled {
		return applyAll(style, theme, Muted(), Faint()).Strikethrough(true)
	}

	bg := b.background
	if bg == "" {
		bg = theme.Accent
	}
	fg := b.foreground
	if fg == "" {
		fg = ContrastText(bg)
	}
	style = style.Background(bg).Foreground(fg)

	if b.focused {
		style = Bold()(style, theme).Underline(true)
	}
	return style
}

// WithBackground sets the background; text colour follows for contrast
// unless set explicitly.
func (b *Button) WithBackground(c lipgloss.Color) *Button {
	b.background = c
	return b
}

// WithForeground sets the text colour.
func (b *Button) WithForeground(c lipgloss.Color) *Button {
	b.foreground = c
	return b
}

// WithFocused sets the focus state.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Background returns the configured background, empty for the theme accent.
func (b *Button) Background() lipgloss.Color {
	return b.background
}

// IsFocused reports whether the button has focus.
func (b *Button) IsFocused() bool {
	return b.focused
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}
