package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxUndo = 100

// Clipboard is the system clipboard
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard uses atotto/clipboard (pbcopy, xclip/xsel/wl-copy, win32)
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

type inputState struct {
	value string
	pos   int
}

// PathInput is a single-line path field with undo/redo and clipboard
// actions. textinput has no sub-range selection, so Select All marks the
// whole value and the next edit replaces it.
type PathInput struct {
	input       textinput.Model
	clip        Clipboard
	undo        []inputState
	redo        []inputState
	allSelected bool
}

// NewPathInput creates a focused path input
func NewPathInput(clip Clipboard) PathInput {
	ti := textinput.New()
	ti.Placeholder = "/path/to/recipe.md"
	ti.Prompt = "› "
	ti.CharLimit = 4096
	ti.PromptStyle = AppNameStyle
	ti.Focus()

	if clip == nil {
		clip = systemClipboard{}
	}
	return PathInput{input: ti, clip: clip}
}

// Value returns the current text
func (p PathInput) Value() string {
	return p.input.Value()
}

// Position returns the cursor position in runes
func (p PathInput) Position() int {
	return p.input.Position()
}

// AllSelected reports whether Select All is in effect
func (p PathInput) AllSelected() bool {
	return p.allSelected
}

// SetValue replaces the text, recording an undo step
func (p *PathInput) SetValue(s string) {
	if s == p.input.Value() {
		return
	}
	p.push()
	p.input.SetValue(s)
	p.input.CursorEnd()
	p.allSelected = false
}

// SetWidth sets the visible width
func (p *PathInput) SetWidth(w int) {
	p.input.Width = w
}

// Focus focuses the field
func (p *PathInput) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur unfocuses the field
func (p *PathInput) Blur() {
	p.input.Blur()
	p.allSelected = false
}

// Focused reports focus
func (p PathInput) Focused() bool {
	return p.input.Focused()
}

// Update forwards msg to the text input, recording an undo step when the
// value changes.
func (p *PathInput) Update(msg tea.Msg) tea.Cmd {
	before := p.state()

	if km, ok := msg.(tea.KeyMsg); ok && p.allSelected {
		switch km.Type {
		case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
			p.input.SetValue("")
			if km.Type == tea.KeyBackspace || km.Type == tea.KeyDelete {
				// The deletion is the edit
				p.allSelected = false
				p.record(before)
				return nil
			}
		}
		p.allSelected = false
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.record(before)
	return cmd
}

func (p *PathInput) record(before inputState) {
	if p.input.Value() == before.value {
		return
	}
	p.pushState(before)
}

func (p *PathInput) pushState(s inputState) {
	p.undo = append(p.undo, s)
	if len(p.undo) > maxUndo {
		p.undo = p.undo[len(p.undo)-maxUndo:]
	}
	p.redo = nil
}

func (p PathInput) state() inputState {
	return inputState{value: p.input.Value(), pos: p.input.Position()}
}

func (p *PathInput) push() {
	p.pushState(p.state())
}

func (p *PathInput) restore(s inputState) {
	p.input.SetValue(s.value)
	p.input.SetCursor(s.pos)
	p.allSelected = false
}

// Undo reverts the last edit. Returns false if there is nothing to undo.
func (p *PathInput) Undo() bool {
	if len(p.undo) == 0 {
		return false
	}
	prev := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	p.redo = append(p.redo, p.state())
	p.restore(prev)
	return true
}

// Redo reapplies the last undone edit
func (p *PathInput) Redo() bool {
	if len(p.redo) == 0 {
		return false
	}
	next := p.redo[len(p.redo)-1]
	p.redo = p.redo[:len(p.redo)-1]
	p.undo = append(p.undo, p.state())
	p.restore(next)
	return true
}

// SelectAll marks the whole value and moves the cursor to the end
func (p *PathInput) SelectAll() {
	p.input.CursorEnd()
	p.allSelected = p.input.Value() != ""
}

// Copy puts the value on the clipboard
func (p *PathInput) Copy() error {
	if p.input.Value() == "" {
		return nil
	}
	return p.clip.WriteAll(p.input.Value())
}

// Cut copies the value and clears the field
func (p *PathInput) Cut() error {
	if p.input.Value() == "" {
		return nil
	}
	if err := p.clip.WriteAll(p.input.Value()); err != nil {
		return err
	}
	p.SetValue("")
	return nil
}

// Paste inserts clipboard text at the cursor, replacing the value when all
// is selected. Newlines are dropped.
func (p *PathInput) Paste() error {
	text, err := p.clip.ReadAll()
	if err != nil {
		return err
	}
	text = singleLine(text)
	if text == "" {
		return nil
	}

	if p.allSelected {
		p.SetValue(text)
		return nil
	}

	runes := []rune(p.input.Value())
	pos := p.input.Position()
	if pos > len(runes) {
		pos = len(runes)
	}
	value := string(runes[:pos]) + text + string(runes[pos:])

	p.push()
	p.input.SetValue(value)
	p.input.SetCursor(pos + len([]rune(text)))
	return nil
}

// View renders the field
func (p PathInput) View() string {
	if p.allSelected {
		return p.input.Prompt + SelectedTextStyle.Render(p.input.Value())
	}
	return p.input.View()
}

func singleLine(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
