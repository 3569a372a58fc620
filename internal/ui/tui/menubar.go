package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/rms/internal/menu"
)

// MenuBar tracks the open submenu and highlighted item
type MenuBar struct {
	menu menu.Menu
	open bool
	sub  int
	item int // index into Submenus[sub].Items, never a separator
}

// NewMenuBar creates a closed menu bar for m
func NewMenuBar(m menu.Menu) MenuBar {
	return MenuBar{menu: m}
}

// Menu returns the underlying menu
func (b MenuBar) Menu() menu.Menu {
	return b.menu
}

// IsOpen returns whether a dropdown is showing
func (b MenuBar) IsOpen() bool {
	return b.open
}

// OpenIndex returns the open submenu index, -1 when closed
func (b MenuBar) OpenIndex() int {
	if !b.open {
		return -1
	}
	return b.sub
}

// Open shows the first submenu
func (b *MenuBar) Open() {
	if len(b.menu.Submenus) == 0 {
		return
	}
	b.open = true
	b.sub = 0
	b.item = b.first()
}

// Close hides the dropdown
func (b *MenuBar) Close() {
	b.open = false
}

// Right moves to the next submenu, wrapping around
func (b *MenuBar) Right() {
	if !b.open {
		return
	}
	b.sub = (b.sub + 1) % len(b.menu.Submenus)
	b.item = b.first()
}

// Left moves to the previous submenu, wrapping around
func (b *MenuBar) Left() {
	if !b.open {
		return
	}
	n := len(b.menu.Submenus)
	b.sub = (b.sub - 1 + n) % n
	b.item = b.first()
}

// Down moves to the next selectable item, wrapping around
func (b *MenuBar) Down() {
	b.step(1)
}

// Up moves to the previous selectable item, wrapping around
func (b *MenuBar) Up() {
	b.step(-1)
}

func (b *MenuBar) step(dir int) {
	if !b.open {
		return
	}
	sel := b.menu.Submenus[b.sub].Selectable()
	if len(sel) == 0 {
		return
	}
	pos := 0
	for i, idx := range sel {
		if idx == b.item {
			pos = i
			break
		}
	}
	pos = (pos + dir + len(sel)) % len(sel)
	b.item = sel[pos]
}

func (b MenuBar) first() int {
	sel := b.menu.Submenus[b.sub].Selectable()
	if len(sel) == 0 {
		return 0
	}
	return sel[0]
}

// Selected returns the highlighted action
func (b MenuBar) Selected() menu.Action {
	if !b.open {
		return menu.ActionNone
	}
	items := b.menu.Submenus[b.sub].Items
	if b.item < 0 || b.item >= len(items) || items[b.item].Separator {
		return menu.ActionNone
	}
	return items[b.item].Action
}

// Titles renders the menu bar line
func (b MenuBar) Titles() string {
	var parts []string
	for i, s := range b.menu.Submenus {
		style := MenuTitleInactive
		if b.open && i == b.sub {
			style = MenuTitleActive
		}
		parts = append(parts, style.Render(s.Title))
	}
	return strings.Join(parts, " ")
}

// Dropdown renders the open submenu, empty when closed
func (b MenuBar) Dropdown() string {
	if !b.open {
		return ""
	}
	s := b.menu.Submenus[b.sub]

	labelWidth := 0
	for _, it := range s.Items {
		if w := lipgloss.Width(it.Action.Label()); w > labelWidth {
			labelWidth = w
		}
	}
	accelWidth := 0
	for _, it := range s.Items {
		if w := lipgloss.Width(it.Action.Accelerator()); w > accelWidth {
			accelWidth = w
		}
	}
	rowWidth := labelWidth + 3 + accelWidth

	var lines []string
	for i, it := range s.Items {
		if it.Separator {
			lines = append(lines, DropdownAccel.Render(strings.Repeat("─", rowWidth)))
			continue
		}
		label := it.Action.Label()
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label)+3)
		accel := it.Action.Accelerator()
		if i == b.item {
			lines = append(lines, DropdownItemSelected.Width(rowWidth).Render(label+pad+accel))
			continue
		}
		lines = append(lines, DropdownItem.Render(label+pad)+DropdownAccel.Render(accel))
	}
	return DropdownStyle.Render(strings.Join(lines, "\n"))
}
