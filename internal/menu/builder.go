package menu

// SubmenuBuilder assembles a Submenu
type SubmenuBuilder struct {
	title string
	items []Item
}

// NewSubmenu starts a submenu with the given title
func NewSubmenu(title string) *SubmenuBuilder {
	return &SubmenuBuilder{title: title}
}

func (b *SubmenuBuilder) add(a Action) *SubmenuBuilder {
	b.items = append(b.items, Item{Action: a})
	return b
}

func (b *SubmenuBuilder) Minimize() *SubmenuBuilder  { return b.add(ActionMinimize) }
func (b *SubmenuBuilder) Quit() *SubmenuBuilder      { return b.add(ActionQuit) }
func (b *SubmenuBuilder) Undo() *SubmenuBuilder      { return b.add(ActionUndo) }
func (b *SubmenuBuilder) Redo() *SubmenuBuilder      { return b.add(ActionRedo) }
func (b *SubmenuBuilder) Cut() *SubmenuBuilder       { return b.add(ActionCut) }
func (b *SubmenuBuilder) Copy() *SubmenuBuilder      { return b.add(ActionCopy) }
func (b *SubmenuBuilder) Paste() *SubmenuBuilder     { return b.add(ActionPaste) }
func (b *SubmenuBuilder) SelectAll() *SubmenuBuilder { return b.add(ActionSelectAll) }

// Separator adds a divider. Leading and repeated separators are dropped.
func (b *SubmenuBuilder) Separator() *SubmenuBuilder {
	if len(b.items) == 0 || b.items[len(b.items)-1].Separator {
		return b
	}
	b.items = append(b.items, Item{Separator: true})
	return b
}

// Build returns the submenu. Trailing separators are dropped.
func (b *SubmenuBuilder) Build() (Submenu, error) {
	if b.title == "" {
		return Submenu{}, ErrEmptyTitle
	}
	items := b.items
	for len(items) > 0 && items[len(items)-1].Separator {
		items = items[:len(items)-1]
	}
	return Submenu{Title: b.title, Items: append([]Item(nil), items...)}, nil
}

// Builder assembles a Menu
type Builder struct {
	submenus []Submenu
}

// New starts an empty menu
func New() *Builder {
	return &Builder{}
}

// Item appends a submenu
func (b *Builder) Item(s Submenu) *Builder {
	b.submenus = append(b.submenus, s)
	return b
}

// Build returns the menu
func (b *Builder) Build() Menu {
	return Menu{Submenus: append([]Submenu(nil), b.submenus...)}
}
