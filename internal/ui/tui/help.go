package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/rms/internal/menu"
)

const helpKeyColumnWidth = 14 // Width for key column in help text (includes padding)

// HelpOverlay displays keyboard shortcuts in a centered overlay
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	appName string
	version string
	menu    menu.Menu
}

// NewHelpOverlay creates a new help overlay component
func NewHelpOverlay(appName, version string, m menu.Menu) HelpOverlay {
	return HelpOverlay{
		appName: appName,
		version: version,
		menu:    m,
	}
}

// Toggle toggles the visibility of the help overlay
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// SetVisible sets the visibility of the help overlay
func (h *HelpOverlay) SetVisible(visible bool) {
	h.visible = visible
}

// IsVisible returns whether the help overlay is visible
func (h HelpOverlay) IsVisible() bool {
	return h.visible
}

// SetSize sets the dimensions of the help overlay
func (ho *HelpOverlay) SetSize(w, h int) {
	ho.width = w
	ho.height = h
}

// View renders the help overlay
func (h HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 3)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	keyStyle := HelpOverlayKey
	descStyle := lipgloss.NewStyle().Foreground(ColorText)
	dimStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var content strings.Builder

	content.WriteString(AppNameStyle.Render(h.appName))
	if h.version != "" {
		content.WriteString(dimStyle.Render(" " + h.version))
	}
	content.WriteString("\n")

	content.WriteString(sectionStyle.Render("Reveal"))
	content.WriteString("\n")
	content.WriteString(formatHelpLine(keyStyle, descStyle, "Enter", "Show typed path in folder", true))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "Tab", "Switch to recent list", true))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "↑↓ jk", "Move in recent list", true))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "o / Enter", "Show recent path in folder", true))

	content.WriteString(sectionStyle.Render("Menu"))
	content.WriteString("\n")
	content.WriteString(formatHelpLine(keyStyle, descStyle, "F10 / alt+m", "Open menu bar", true))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "←→", "Switch menu", true))
	content.WriteString(formatHelpLine(keyStyle, descStyle, "Esc", "Close menu", true))

	for _, s := range h.menu.Submenus {
		content.WriteString(sectionStyle.Render(s.Title))
		content.WriteString("\n")
		for _, it := range s.Items {
			if it.Separator {
				continue
			}
			content.WriteString(formatHelpLine(keyStyle, descStyle, it.Action.Accelerator(), it.Action.Label(), true))
		}
	}

	content.WriteString("\n")
	content.WriteString(dimStyle.Render("Press any key to close"))

	box := boxStyle.Render(content.String())

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}

// formatHelpLine formats a single help line with key and description
func formatHelpLine(keyStyle, descStyle lipgloss.Style, key, desc string, newline bool) string {
	line := keyStyle.Width(helpKeyColumnWidth).Render(key) + descStyle.Render(desc)
	if newline {
		return line + "\n"
	}
	return line
}

// HelpBar renders a bottom help bar with key hints
func HelpBar(width int) string {
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")) // lighter dim description

	// Full hints for wide terminals, abbreviated for narrow
	type hint struct {
		key  string
		desc string
	}

	fullHints := []hint{
		{"Enter", "show in folder"},
		{"Tab", "recent"},
		{"F10", "menu"},
		{"alt+z", "undo"},
		{"F1", "help"},
		{"ctrl+q", "quit"},
	}

	compactHints := []hint{
		{"Enter", "reveal"},
		{"F10", "menu"},
		{"F1", "help"},
		{"ctrl+q", "quit"},
	}

	minimalHints := []hint{
		{"F1", "help"},
		{"ctrl+q", "quit"},
	}

	var hints []hint
	if width >= 100 {
		hints = fullHints
	} else if width >= 60 {
		hints = compactHints
	} else {
		hints = minimalHints
	}

	var parts []string
	for _, h := range hints {
		parts = append(parts, HelpKey.Render(h.key)+" "+descStyle.Render(h.desc))
	}

	separator := "   "
	if width < 80 {
		separator = "  "
	}

	bar := strings.Join(parts, separator)

	return HelpStyle.Width(width).MaxHeight(1).Render(bar)
}
