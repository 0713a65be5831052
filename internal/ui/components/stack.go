package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stack lays its children out top to bottom.
type Stack struct {
	BaseComponent
	children []Renderable
	gap      int
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child and joins them. Children that render
// to the empty string take no space.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := child.ViewWithContext(ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	if s.gap > 0 {
		spaced := make([]string, 0, len(views)*2-1)
		blank := strings.Repeat("\n", s.gap-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, blank)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}

	return s.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

// WithGap sets the number of blank lines between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// Add appends children.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []Renderable {
	return s.children
}
