package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is an immutable set of colours and glyphs shared by the components.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Danger lipgloss.Color
	Focus  lipgloss.Color

	// FocusMarker prefixes the focused row; unfocused rows get the same
	// width in spaces.
	FocusMarker string
	DividerRune string
	Border      lipgloss.Border
}

// DefaultTheme returns the theme used when none is supplied.
func DefaultTheme() Theme {
	return Theme{
		Text:        lipgloss.Color("252"),
		Muted:       lipgloss.Color("244"),
		Accent:      lipgloss.Color("39"),
		Danger:      lipgloss.Color("196"),
		Focus:       lipgloss.Color("212"),
		FocusMarker: "›",
		DividerRune: "─",
		Border:      lipgloss.RoundedBorder(),
	}
}

// WithAccent returns a copy of t with a different accent colour.
func (t Theme) WithAccent(c lipgloss.Color) Theme {
	t.Accent = c
	return t
}

// WithFocus returns a copy of t with a different focus colour.
func (t Theme) WithFocus(c lipgloss.Color) Theme {
	t.Focus = c
	return t
}
