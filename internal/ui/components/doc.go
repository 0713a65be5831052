// Package components provides the small, theme-aware widget vocabulary the
// widgetlab page is drawn with.
//
// Components render to strings through lipgloss. Themes are immutable and
// passed explicitly through a RenderContext:
//
//	ctx := components.DefaultContext().WithWidth(40)
//	out := components.NewButton("Add Number").WithFocused(true).ViewWithContext(ctx)
//
// Every component also has a View method that renders with the default
// theme. Styling beyond a component's own options is applied with StyleFunc
// appliers, which receive the active theme.
package components
