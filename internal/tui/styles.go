package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetlab/internal/ui/components"
)

const (
	maxPageWidth  = 48
	minPageWidth  = 16
	keyColumnSize = 4
)

const brandColor = lipgloss.Color("205")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(brandColor).MarginBottom(1)
	footerStyle = lipgloss.NewStyle().MarginTop(1)
	pageStyle   = lipgloss.NewStyle().Padding(1, 2)
)

// pageWidth clamps the terminal width to the width the page is drawn at.
// 0 means unknown and keeps the component default.
func pageWidth(terminal int) int {
	if terminal <= 0 {
		return 0
	}
	w := terminal - pageStyle.GetHorizontalPadding()
	if w > maxPageWidth {
		w = maxPageWidth
	}
	if w < minPageWidth {
		w = minPageWidth
	}
	return w
}

// defaultTheme highlights focused rows in the title colour.
func defaultTheme() components.Theme {
	return components.DefaultTheme().WithFocus(brandColor)
}
