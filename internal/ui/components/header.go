package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a section heading with an optional subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a bold header in the theme's accent colour.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Bold(), Accent())
	return h
}

// View renders the header with the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := h.ComputeStyle(ctx.Theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, HintText(h.subtitle).ViewWithContext(ctx))
}

// WithSubtitle adds a subtitle line.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers adds theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
