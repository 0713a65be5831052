package components

import (
	"strings"
)

// Divider is a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that spans the context width.
func NewDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent()}
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. An explicit width wins over the
// context width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	char := d.char
	if char == "" {
		char = ctx.Theme.DividerRune
	}
	if char == "" {
		char = "-"
	}

	width := d.width
	if width <= 0 {
		width = ctx.widthOr(defaultWidth)
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Muted)
	return style.Render(strings.Repeat(char, width))
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	d.char = char
	return d
}

// WithWidth fixes the width in cells.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}
