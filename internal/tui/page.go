package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/widgetlab/internal/application/page"
	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
	"github.com/alexisbeaulieu97/widgetlab/internal/ui/components"
)

// Focus positions on the page. Entries follow FocusAdd in list order.
const (
	FocusNone   = -1
	FocusToggle = 0
	FocusAdd    = 1
)

const (
	toggleHeading = "Toggle"
	listHeading   = "NumberList"
	addLabel      = "Add Number"
)

// PageView is everything RenderPage needs to draw the page.
type PageView struct {
	Toggle      widget.ToggleState
	Entries     []widget.Entry
	AddDisabled bool
	// Focus is FocusNone, FocusToggle, FocusAdd or FocusAdd+1+i for the
	// i-th entry.
	Focus int
	Error string
	Width int
	Theme components.Theme
}

// ViewFromSnapshot builds an unfocused view of snap.
func ViewFromSnapshot(snap page.Snapshot) PageView {
	return PageView{
		Toggle:      snap.Toggle,
		Entries:     snap.Entries,
		AddDisabled: snap.Exhausted,
		Focus:       FocusNone,
		Theme:       components.DefaultTheme(),
	}
}

// RenderPage draws the page: the toggle section, then the number list
// section, each under its heading and closed by a divider. An error, when
// present, is shown above both.
func RenderPage(v PageView) string {
	theme := v.Theme
	if theme.FocusMarker == "" {
		theme = components.DefaultTheme()
	}
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(v.Width)

	stack := components.VStack()
	if v.Error != "" {
		stack.Add(components.ErrorAlert(v.Error).WithHint("press x to dismiss"))
	}

	toggle := components.NewButton(v.Toggle.Label).
		WithBackground(components.MustColor(v.Toggle.Color)).
		WithFocused(v.Focus == FocusToggle)
	stack.Add(
		components.NewHeader(toggleHeading),
		toggle,
		components.NewDivider(),
	)

	add := components.NewButton(addLabel).
		WithFocused(v.Focus == FocusAdd).
		WithDisabled(v.AddDisabled)
	stack.Add(components.NewHeader(listHeading), add)

	if len(v.Entries) == 0 {
		stack.Add(components.HintText("  no numbers yet"))
	}
	for i, entry := range v.Entries {
		item := components.NewListItem(entry.ID.String(), fmt.Sprintf("%d", entry.Value)).
			WithKeyWidth(keyColumnSize).
			WithFocused(v.Focus == FocusAdd+1+i)
		stack.Add(item)
	}
	stack.Add(components.NewDivider())

	return stack.ViewWithContext(ctx)
}
