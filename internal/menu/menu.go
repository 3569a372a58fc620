// Package menu models the application menu: an app submenu with window
// actions and an Edit submenu with the standard text editing actions.
package menu

import (
	"errors"
	"fmt"
)

// Action is a native menu action
type Action int

const (
	ActionNone Action = iota
	ActionMinimize
	ActionQuit
	ActionUndo
	ActionRedo
	ActionCut
	ActionCopy
	ActionPaste
	ActionSelectAll
)

var actionInfo = map[Action]struct {
	label string
	accel string
}{
	ActionMinimize:  {"Minimize", "ctrl+z"},
	ActionQuit:      {"Quit", "ctrl+q"},
	ActionUndo:      {"Undo", "alt+z"},
	ActionRedo:      {"Redo", "alt+y"},
	ActionCut:       {"Cut", "alt+x"},
	ActionCopy:      {"Copy", "alt+c"},
	ActionPaste:     {"Paste", "alt+v"},
	ActionSelectAll: {"Select All", "alt+a"},
}

// Label returns the display label
func (a Action) Label() string {
	return actionInfo[a].label
}

// Accelerator returns the key that triggers the action outside the menu
func (a Action) Accelerator() string {
	return actionInfo[a].accel
}

func (a Action) String() string {
	if l := a.Label(); l != "" {
		return l
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Item is a menu entry: an action or a separator
type Item struct {
	Action    Action
	Separator bool
}

// Submenu is a titled list of items
type Submenu struct {
	Title string
	Items []Item
}

// Selectable returns the indices of non-separator items
func (s Submenu) Selectable() []int {
	var idx []int
	for i, it := range s.Items {
		if !it.Separator {
			idx = append(idx, i)
		}
	}
	return idx
}

// Menu is the menu bar
type Menu struct {
	Submenus []Submenu
}

// Find returns the submenu with the given title
func (m Menu) Find(title string) (Submenu, bool) {
	for _, s := range m.Submenus {
		if s.Title == title {
			return s, true
		}
	}
	return Submenu{}, false
}

// ActionFor returns the action bound to accelerator key k
func (m Menu) ActionFor(k string) (Action, bool) {
	if k == "" {
		return ActionNone, false
	}
	for _, s := range m.Submenus {
		for _, it := range s.Items {
			if !it.Separator && it.Action.Accelerator() == k {
				return it.Action, true
			}
		}
	}
	return ActionNone, false
}

// ErrEmptyTitle is returned when building a submenu without a title
var ErrEmptyTitle = errors.New("menu: submenu title is empty")

// Default builds the shell's menu: the app submenu titled appName and Edit
func Default(appName string) (Menu, error) {
	app, err := NewSubmenu(appName).Minimize().Quit().Build()
	if err != nil {
		return Menu{}, err
	}
	edit, err := NewSubmenu("Edit").
		Undo().
		Redo().
		Separator().
		Cut().
		Copy().
		Paste().
		Separator().
		SelectAll().
		Build()
	if err != nil {
		return Menu{}, err
	}
	return New().Item(app).Item(edit).Build(), nil
}
