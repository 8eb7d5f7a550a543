package styles

import "github.com/charmbracelet/lipgloss"

// PopupStyle is the framed box used for overlays such as the help view.
func PopupStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Secondary).
		Padding(0, 1)
}
