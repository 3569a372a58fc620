package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/rms/internal/history"
)

// RecentList shows recently revealed paths
type RecentList struct {
	entries  []history.Entry
	selected int
	offset   int
	width    int
	height   int
	focused  bool
}

// SetEntries replaces the list, keeping the selection in range
func (r *RecentList) SetEntries(entries []history.Entry) {
	r.entries = entries
	if r.selected >= len(entries) {
		r.selected = len(entries) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
	r.clampOffset()
}

// SetSize sets the panel dimensions
func (r *RecentList) SetSize(w, h int) {
	r.width = w
	r.height = h
	r.clampOffset()
}

// SetFocused sets focus state
func (r *RecentList) SetFocused(f bool) {
	r.focused = f
}

// Len returns the number of entries
func (r RecentList) Len() int {
	return len(r.entries)
}

// Selected returns the selected path, empty if the list is empty
func (r RecentList) Selected() string {
	if r.selected < 0 || r.selected >= len(r.entries) {
		return ""
	}
	return r.entries[r.selected].Path
}

// SelectFirst selects the newest entry
func (r *RecentList) SelectFirst() {
	r.selected = 0
	r.offset = 0
}

// MoveUp moves the selection up
func (r *RecentList) MoveUp() {
	if r.selected > 0 {
		r.selected--
		r.clampOffset()
	}
}

// MoveDown moves the selection down
func (r *RecentList) MoveDown() {
	if r.selected < len(r.entries)-1 {
		r.selected++
		r.clampOffset()
	}
}

func (r *RecentList) visibleRows() int {
	rows := r.height - 3 // border + title
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (r *RecentList) clampOffset() {
	rows := r.visibleRows()
	if r.selected < r.offset {
		r.offset = r.selected
	}
	if r.selected >= r.offset+rows {
		r.offset = r.selected - rows + 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// View renders the panel
func (r RecentList) View() string {
	style := PanelStyle
	if r.focused {
		style = PanelFocusedStyle
	}
	inner := r.width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(PanelTitle.Render(fmt.Sprintf("Recent (%d)", len(r.entries))))

	if len(r.entries) == 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Nothing revealed yet"))
	}

	rows := r.visibleRows()
	for i := r.offset; i < len(r.entries) && i < r.offset+rows; i++ {
		e := r.entries[i]
		when := FormatTime(e.RevealedAt)
		avail := inner - lipgloss.Width(when) - 2
		path := truncateLeft(e.Path, avail)
		pad := avail - lipgloss.Width(path)
		if pad < 0 {
			pad = 0
		}
		line := path + strings.Repeat(" ", pad) + "  " + when

		b.WriteString("\n")
		switch {
		case i == r.selected && r.focused:
			b.WriteString(ListItemSelected.Render(line))
		case i == r.selected:
			b.WriteString(ListItemSelectedUnfocused.Render(line))
		default:
			b.WriteString(ListItemStyle.Render(line))
		}
	}

	height := r.height - 2
	if height < 1 {
		height = 1
	}
	return style.Width(r.width - 2).Height(height).Render(b.String())
}

// truncateLeft keeps the tail of s, which is the informative end of a path
func truncateLeft(s string, max int) string {
	runes := []rune(s)
	if max <= 1 || len(runes) <= max {
		return s
	}
	return "…" + string(runes[len(runes)-max+1:])
}
