package components

// Text is a styled run of text.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// HintText creates muted text.
func HintText(content string) *Text {
	return NewText(content).WithAppliers(Muted())
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	if t.content == "" {
		return ""
	}
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// WithAppliers adds theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Content returns the text.
func (t *Text) Content() string {
	return t.content
}
