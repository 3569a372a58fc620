package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Header displays the app name, menu bar and version (2 lines)
type Header struct {
	appName string
	version string
	width   int
	status  string
}

// NewHeader creates a new header component
func NewHeader(appName, version string) Header {
	return Header{
		appName: appName,
		version: version,
	}
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// SetStatus sets the right-aligned status text on the second line
func (h *Header) SetStatus(s string) {
	h.status = s
}

// View renders the header. menuLine is the rendered menu bar.
func (h Header) View(menuLine string) string {
	left := AppNameStyle.Render(h.appName) + "  " + menuLine
	right := ""
	if h.version != "" {
		right = lipgloss.NewStyle().Foreground(ColorMuted).Render(h.version)
	}

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line1 := HeaderStyle.Width(h.width).Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)

	line2 := StatusStyle.Width(h.width).MaxHeight(1).Render(h.status)
	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}
