package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/rms/internal/command"
)

// Notification is a dismissable error box
type Notification struct {
	visible bool
	title   string
	message string
	path    string
	width   int
	height  int
}

// Show displays p
func (n *Notification) Show(p *command.ErrorPayload) {
	if p == nil {
		return
	}
	n.visible = true
	n.title = noticeTitle(p.Kind)
	n.message = p.Message
	n.path = p.Path
}

// ShowError displays a plain error under title
func (n *Notification) ShowError(title string, err error) {
	n.visible = true
	n.title = title
	n.message = err.Error()
	n.path = ""
}

// Dismiss hides the notification
func (n *Notification) Dismiss() {
	n.visible = false
}

// IsVisible returns whether the notification is showing
func (n Notification) IsVisible() bool {
	return n.visible
}

// Title returns the current title
func (n Notification) Title() string {
	return n.title
}

// SetSize sets the area the box is centered in
func (n *Notification) SetSize(w, h int) {
	n.width = w
	n.height = h
}

// View renders the notification
func (n Notification) View() string {
	if !n.visible {
		return ""
	}

	maxWidth := n.width - 10
	if maxWidth < 20 {
		maxWidth = 20
	}
	body := lipgloss.NewStyle().Foreground(ColorText).Width(maxWidth)

	var content strings.Builder
	content.WriteString(NoticeTitle.Render(n.title))
	content.WriteString("\n\n")
	if n.path != "" {
		content.WriteString(lipgloss.NewStyle().Foreground(ColorCyan).Render(n.path))
		content.WriteString("\n")
	}
	content.WriteString(body.Render(n.message))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("Press any key to dismiss"))

	return NoticeStyle.MaxWidth(maxWidth + 8).Render(content.String())
}

func noticeTitle(kind string) string {
	switch kind {
	case command.KindPathNotFound:
		return "Path not found"
	case command.KindPathInaccessible:
		return "Path is not accessible"
	case command.KindSpawnFailed:
		return "Could not open the file manager"
	case command.KindEncoding:
		return "Path can't be encoded"
	case command.KindEmptyPath:
		return "No path given"
	case command.KindUnsupportedPlatform:
		return "Not supported on this platform"
	case command.KindInvalidArgs, command.KindUnknownCommand:
		return "Bad command"
	}
	return "Something went wrong"
}
