package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const defaultWidth = 32

// Renderable is anything that draws itself for a render context.
type Renderable interface {
	ViewWithContext(ctx RenderContext) string
}

// StyleFunc transforms a style using data from the active theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent holds the style and appliers shared by every component.
// Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent returns a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle applies the component's appliers, in order, for theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return applyAll(b.style, theme, b.appliers...)
}

// SetStyle replaces the base style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends appliers after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers, appliers...)
}

func applyAll(s lipgloss.Style, theme Theme, appliers ...StyleFunc) lipgloss.Style {
	for _, fn := range appliers {
		s = fn(s, theme)
	}
	return s
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) }
}

// Faint dims text.
func Faint() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Faint(true) }
}

// Muted renders text in the theme's muted colour.
func Muted() StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style { return s.Foreground(t.Muted) }
}

// Accent renders text in the theme's accent colour.
func Accent() StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style { return s.Foreground(t.Accent) }
}

// Danger renders text in the theme's danger colour.
func Danger() StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style { return s.Foreground(t.Danger) }
}

// RenderContext carries the theme and the available width into a render.
type RenderContext struct {
	Theme Theme
	// Width is the available width in cells; 0 means unknown.
	Width int
}

// DefaultContext returns a context with the default theme and no width.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy of the context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	if width < 0 {
		width = 0
	}
	r.Width = width
	return r
}

// widthOr returns the context width, or fallback when unknown.
func (r RenderContext) widthOr(fallback int) int {
	if r.Width > 0 {
		return r.Width
	}
	return fallback
}

// marker returns the focus gutter for a row.
func (r RenderContext) marker(focused bool) string {
	glyph := r.Theme.FocusMarker
	if glyph == "" {
		glyph = ">"
	}
	if !focused {
		return strings.Repeat(" ", ansi.StringWidth(glyph)+1)
	}
	return lipgloss.NewStyle().Foreground(r.Theme.Focus).Bold(true).Render(glyph) + " "
}
