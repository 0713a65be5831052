package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const title = "widgetlab"

// View renders the page with a help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := ViewFromSnapshot(m.service.Snapshot())
	v.Focus = m.focus
	v.Error = m.errMsg
	v.Width = pageWidth(m.width)
	v.Theme = m.theme

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		RenderPage(v),
		footerStyle.Render(m.help.View(m.keys)),
	)
	return pageStyle.Render(body)
}
