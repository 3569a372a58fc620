package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/rms/internal/command"
	"github.com/lumipallolabs/rms/internal/history"
	"github.com/lumipallolabs/rms/internal/logging"
	"github.com/lumipallolabs/rms/internal/menu"
)

// Panel identifies which panel is active
type Panel int

const (
	PanelInput Panel = iota
	PanelRecent
)

// Message types for Bubble Tea
type revealResultMsg struct {
	path string
	resp command.Response
}

// Options configures NewApp
type Options struct {
	AppName   string
	Version   string
	StartPath string
	Registry  *command.Registry
	// History may be nil, in which case nothing is remembered
	History   *history.Manager
	Clipboard Clipboard
}

// App is the shell's TUI model
type App struct {
	registry *command.Registry
	history  *history.Manager

	// UI Components
	header  Header
	menuBar MenuBar
	input   PathInput
	recent  RecentList
	help    HelpOverlay
	notice  Notification
	keys    KeyMap

	// UI state
	activePanel Panel
	info        string
	quitting    bool

	// Dimensions
	width  int
	height int
}

// NewApp creates a new application instance
func NewApp(opts Options) (App, error) {
	if opts.AppName == "" {
		opts.AppName = "rms"
	}
	m, err := menu.Default(opts.AppName)
	if err != nil {
		return App{}, fmt.Errorf("build menu: %w", err)
	}
	if opts.Registry == nil {
		return App{}, fmt.Errorf("no command registry")
	}

	app := App{
		registry:    opts.Registry,
		history:     opts.History,
		header:      NewHeader(opts.AppName, opts.Version),
		menuBar:     NewMenuBar(m),
		input:       NewPathInput(opts.Clipboard),
		help:        NewHelpOverlay(opts.AppName, opts.Version, m),
		keys:        DefaultKeyMap(),
		activePanel: PanelInput,
	}

	if opts.History != nil {
		app.recent.SetEntries(opts.History.Entries())
	}
	if opts.StartPath != "" {
		app.input.SetValue(opts.StartPath)
		app.info = describePath(opts.StartPath)
	}

	return app, nil
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case revealResultMsg:
		return a.handleRevealResult(msg)
	}

	// Cursor blink and friends
	if a.activePanel == PanelInput {
		cmd := a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays - any key closes them
	if a.notice.IsVisible() {
		a.notice.Dismiss()
		return a, nil
	}
	if a.help.IsVisible() {
		a.help.SetVisible(false)
		return a, nil
	}

	if a.menuBar.IsOpen() {
		return a.handleMenuKey(msg)
	}

	switch {
	case msg.String() == "ctrl+c":
		return a.runAction(menu.ActionQuit)

	case key.Matches(msg, a.keys.Menu):
		a.menuBar.Open()
		return a, nil

	case msg.String() == "f1":
		a.help.Toggle()
		return a, nil

	case key.Matches(msg, a.keys.Tab):
		a.switchPanel()
		return a, nil
	}

	if action, ok := a.menuBar.Menu().ActionFor(msg.String()); ok {
		return a.runAction(action)
	}

	if a.activePanel == PanelInput {
		if key.Matches(msg, a.keys.Enter) {
			return a, a.revealCmd(a.input.Value())
		}
		cmd := a.input.Update(msg)
		a.info = describePath(a.input.Value())
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.runAction(menu.ActionQuit)
	case key.Matches(msg, a.keys.Help):
		a.help.Toggle()
	case key.Matches(msg, a.keys.Up):
		a.recent.MoveUp()
	case key.Matches(msg, a.keys.Down):
		a.recent.MoveDown()
	case key.Matches(msg, a.keys.Enter), key.Matches(msg, a.keys.Reveal):
		if path := a.recent.Selected(); path != "" {
			return a, a.revealCmd(path)
		}
	case key.Matches(msg, a.keys.Back):
		a.switchPanel()
	}
	return a, nil
}

// handleMenuKey drives the open menu bar
func (a App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Menu):
		a.menuBar.Close()
	case key.Matches(msg, a.keys.Left):
		a.menuBar.Left()
	case key.Matches(msg, a.keys.Right):
		a.menuBar.Right()
	case key.Matches(msg, a.keys.Up):
		a.menuBar.Up()
	case key.Matches(msg, a.keys.Down):
		a.menuBar.Down()
	case key.Matches(msg, a.keys.Enter):
		action := a.menuBar.Selected()
		a.menuBar.Close()
		return a.runAction(action)
	case msg.String() == "ctrl+c":
		return a.runAction(menu.ActionQuit)
	}
	return a, nil
}

// runAction performs a menu action
func (a App) runAction(action menu.Action) (tea.Model, tea.Cmd) {
	logging.Debug.Debug().Stringer("action", action).Msg("menu action")

	switch action {
	case menu.ActionNone:
		return a, nil

	case menu.ActionMinimize:
		return a, tea.Suspend

	case menu.ActionQuit:
		a.quitting = true
		if a.history != nil {
			if err := a.history.Close(); err != nil {
				logging.Debug.Warn().Err(err).Msg("save history")
			}
		}
		return a, tea.Quit
	}

	// Edit actions work on the path input
	cmd := a.focusInput()
	var err error
	switch action {
	case menu.ActionUndo:
		if !a.input.Undo() {
			a.header.SetStatus("Nothing to undo")
		}
	case menu.ActionRedo:
		if !a.input.Redo() {
			a.header.SetStatus("Nothing to redo")
		}
	case menu.ActionCut:
		err = a.input.Cut()
	case menu.ActionCopy:
		err = a.input.Copy()
		if err == nil && a.input.Value() != "" {
			a.header.SetStatus("Copied")
		}
	case menu.ActionPaste:
		err = a.input.Paste()
	case menu.ActionSelectAll:
		a.input.SelectAll()
	}
	if err != nil {
		logging.Debug.Warn().Err(err).Stringer("action", action).Msg("clipboard")
		a.notice.ShowError("Clipboard unavailable", err)
	}
	a.info = describePath(a.input.Value())
	return a, cmd
}

// revealCmd dispatches show_in_folder for path
func (a App) revealCmd(path string) tea.Cmd {
	registry := a.registry
	return func() tea.Msg {
		logging.Debug.Debug().Str("path", path).Msg("show_in_folder")
		resp := registry.Call(context.Background(), command.ShowInFolderName, command.ShowInFolderArgs{Path: path})
		return revealResultMsg{path: path, resp: resp}
	}
}

func (a App) handleRevealResult(msg revealResultMsg) (tea.Model, tea.Cmd) {
	if !msg.resp.OK {
		logging.Debug.Debug().Str("path", msg.path).Str("kind", msg.resp.Error.Kind).Msg("reveal failed")
		a.notice.Show(msg.resp.Error)
		a.header.SetStatus("")
		return a, nil
	}

	a.header.SetStatus("Revealed " + msg.path)
	if a.history != nil {
		a.history.Add(msg.path)
		a.recent.SetEntries(a.history.Entries())
		// The revealed path is now at the front
		a.recent.SelectFirst()
	}
	return a, nil
}

func (a *App) switchPanel() {
	if a.activePanel == PanelInput {
		a.activePanel = PanelRecent
		a.input.Blur()
		a.recent.SetFocused(true)
		return
	}
	a.focusInput()
}

func (a *App) focusInput() tea.Cmd {
	a.activePanel = PanelInput
	a.recent.SetFocused(false)
	return a.input.Focus()
}

// updateLayout calculates component sizes
func (a *App) updateLayout() {
	headerHeight := 2
	helpBarHeight := 1
	inputHeight := 3
	infoHeight := 1

	recentHeight := a.height - headerHeight - helpBarHeight - inputHeight - infoHeight
	if recentHeight < 3 {
		recentHeight = 3
	}

	a.header.SetWidth(a.width)
	a.input.SetWidth(a.width - 8)
	a.recent.SetSize(a.width, recentHeight)
	a.help.SetSize(a.width, a.height)
	a.notice.SetSize(a.width, a.height)
}

// View implements tea.Model
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	// Overlays
	if a.notice.IsVisible() {
		return a.renderOverlay(a.notice.View())
	}
	if a.help.IsVisible() {
		return a.help.View()
	}

	var sections []string
	sections = append(sections, a.header.View(a.menuBar.Titles()))

	if a.menuBar.IsOpen() {
		sections = append(sections, lipgloss.NewStyle().MarginLeft(a.dropdownOffset()).Render(a.menuBar.Dropdown()))
	}

	inputStyle := PanelStyle
	if a.activePanel == PanelInput {
		inputStyle = PanelFocusedStyle
	}
	sections = append(sections, inputStyle.Width(a.width-2).Render(a.input.View()))
	sections = append(sections, InfoStyle.Width(a.width).MaxHeight(1).Render(a.info))
	sections = append(sections, a.recent.View())
	sections = append(sections, HelpBar(a.width))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().MaxHeight(a.height).Render(content)
}

// dropdownOffset returns the column where the open submenu's title starts
func (a App) dropdownOffset() int {
	// Header padding + app name + two spaces
	offset := 1 + lipgloss.Width(AppNameStyle.Render(a.header.appName)) + 2
	for i, s := range a.menuBar.Menu().Submenus {
		if i == a.menuBar.OpenIndex() {
			break
		}
		offset += lipgloss.Width(MenuTitleInactive.Render(s.Title)) + 1
	}
	return offset
}

// renderOverlay renders an overlay centered on screen
func (a App) renderOverlay(overlay string) string {
	return lipgloss.Place(
		a.width, a.height,
		lipgloss.Center, lipgloss.Center,
		overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBackground),
	)
}
