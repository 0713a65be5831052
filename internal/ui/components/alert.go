package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects an alert's colour and icon.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantError
)

// Alert is a bordered message box.
type Alert struct {
	BaseComponent
	message string
	hint    string
	variant AlertVariant
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	colour, tint, icon := ctx.Theme.Accent, Accent(), "i"
	if a.variant == AlertVariantError {
		colour, tint, icon = ctx.Theme.Danger, Danger(), "✗"
	}

	body := NewText(icon+" "+a.message).WithAppliers(Bold(), tint).ViewWithContext(ctx)
	if a.hint != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, HintText(a.hint).ViewWithContext(ctx))
	}

	box := a.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Border).
		BorderForeground(colour).
		Padding(0, 1)
	return box.Render(body)
}

// WithVariant sets the variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithHint adds a muted second line.
func (a *Alert) WithHint(hint string) *Alert {
	a.hint = hint
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}
