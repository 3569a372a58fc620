package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumipallolabs/rms/internal/command"
	"github.com/lumipallolabs/rms/internal/history"
	"github.com/lumipallolabs/rms/internal/menu"
	"github.com/lumipallolabs/rms/internal/reveal"
)

type stubRevealer struct {
	paths []string
	err   error
}

func (s *stubRevealer) Reveal(path string) error {
	s.paths = append(s.paths, path)
	return s.err
}

func newTestApp(t *testing.T, rev reveal.Revealer) (App, *history.Manager) {
	t.Helper()
	hist := history.NewManager(filepath.Join(t.TempDir(), "history.json"), 5)
	t.Cleanup(func() { _ = hist.Close() })

	app, err := NewApp(Options{
		AppName:   "rms",
		Version:   "test",
		Registry:  command.NewDefaultRegistry(rev),
		History:   hist,
		Clipboard: &fakeClipboard{},
	})
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(App), hist
}

// send feeds msg to the app. Returned commands are not run; cursor blink
// commands would block.
func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	return model.(App), cmd
}

// sendReveal feeds a key that dispatches show_in_folder and feeds the
// result back in.
func sendReveal(t *testing.T, a App, msg tea.KeyMsg) App {
	t.Helper()
	model, cmd := a.Update(msg)
	require.NotNil(t, cmd)
	res, ok := cmd().(revealResultMsg)
	require.True(t, ok, "expected a reveal result")
	model, _ = model.(App).Update(res)
	return model.(App)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(t *testing.T, a App, s string) App {
	for _, r := range s {
		a, _ = send(t, a, keyRunes(string(r)))
	}
	return a
}

func TestAppRevealTypedPath(t *testing.T) {
	rev := &stubRevealer{}
	a, hist := newTestApp(t, rev)

	a = typeInto(t, a, "/home/u/doc.txt")
	a = sendReveal(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"/home/u/doc.txt"}, rev.paths)
	assert.False(t, a.notice.IsVisible())
	assert.Equal(t, []string{"/home/u/doc.txt"}, hist.Paths())
	assert.Equal(t, 1, a.recent.Len())
	assert.Contains(t, a.header.status, "Revealed")
}

func TestAppRevealErrorShowsNotification(t *testing.T) {
	rev := &stubRevealer{err: &reveal.Error{Op: "stat", Path: "/x,y", Kind: reveal.ErrPathNotFound}}
	a, hist := newTestApp(t, rev)

	a = typeInto(t, a, "/x,y")
	a = sendReveal(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, a.notice.IsVisible())
	assert.Equal(t, "Path not found", a.notice.Title())
	assert.Empty(t, hist.Paths(), "failed reveals are not remembered")
	assert.Contains(t, a.View(), "Path not found")

	// Any key dismisses, without reaching the input
	a, _ = send(t, a, keyRunes("z"))
	assert.False(t, a.notice.IsVisible())
	assert.Equal(t, "/x,y", a.input.Value())
}

func TestAppNonexistentPathDoesNotCrash(t *testing.T) {
	rev := reveal.New("linux", reveal.WithLauncher(&noLaunch{t: t}))
	a, _ := newTestApp(t, rev)

	a = typeInto(t, a, filepath.Join(t.TempDir(), "gone,file.txt"))
	require.NotPanics(t, func() {
		a = sendReveal(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	})
	assert.True(t, a.notice.IsVisible())
}

type noLaunch struct{ t *testing.T }

func (n *noLaunch) Start(name string, _ ...string) error {
	n.t.Errorf("unexpected launch of %s", name)
	return nil
}

func (n *noLaunch) StartDetached(name string, _ ...string) error {
	n.t.Errorf("unexpected launch of %s", name)
	return nil
}

func TestAppRevealFromRecent(t *testing.T) {
	rev := &stubRevealer{}
	a, hist := newTestApp(t, rev)
	hist.Add("/older")
	hist.Add("/newer")
	a.recent.SetEntries(hist.Entries())

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, PanelRecent, a.activePanel)

	a, _ = send(t, a, keyRunes("j"))
	a = sendReveal(t, a, keyRunes("o"))

	assert.Equal(t, []string{"/older"}, rev.paths)
	assert.Equal(t, []string{"/older", "/newer"}, hist.Paths())
	assert.Equal(t, "/older", a.recent.Selected(), "selection follows the revealed path")
}

func TestAppMenuQuit(t *testing.T) {
	a, _ := newTestApp(t, &stubRevealer{})

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyF10})
	require.True(t, a.menuBar.IsOpen())
	assert.Contains(t, a.View(), "Minimize")

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, menu.ActionQuit, a.menuBar.Selected())

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", model.(App).View())
}

func TestAppMenuMinimizeSuspends(t *testing.T) {
	a, _ := newTestApp(t, &stubRevealer{})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.SuspendMsg{}, cmd())
}

func TestAppEditMenuActions(t *testing.T) {
	a, _ := newTestApp(t, &stubRevealer{})
	clip := a.input.clip.(*fakeClipboard)

	a = typeInto(t, a, "/ab")

	// Edit > Undo via the menu bar
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyF10})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, a.menuBar.IsOpen())
	assert.Equal(t, "/a", a.input.Value())

	// Redo and copy through accelerators
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y"), Alt: true})
	assert.Equal(t, "/ab", a.input.Value())
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true})
	assert.Equal(t, "/ab", clip.text)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	assert.Equal(t, "", a.input.Value())

	clip.text = "/srv"
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v"), Alt: true})
	assert.Equal(t, "/srv", a.input.Value())

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true})
	assert.True(t, a.input.AllSelected())
}

func TestAppEditActionRefocusesInput(t *testing.T) {
	a, _ := newTestApp(t, &stubRevealer{})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, PanelRecent, a.activePanel)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true})
	assert.Equal(t, PanelInput, a.activePanel)
	assert.True(t, a.input.Focused())
}

func TestAppHelpOverlay(t *testing.T) {
	a, _ := newTestApp(t, &stubRevealer{})

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyF1})
	require.True(t, a.help.IsVisible())
	assert.Contains(t, a.View(), "Select All")

	a, _ = send(t, a, keyRunes("x"))
	assert.False(t, a.help.IsVisible())
	assert.Equal(t, "", a.input.Value())
}

func TestAppPathInfo(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "soup.md")
	require.NoError(t, os.WriteFile(file, []byte("# Soup\n\nboil water\n"), 0644))

	a, _ := newTestApp(t, &stubRevealer{})
	a = typeInto(t, a, dir)
	assert.Equal(t, "directory", a.info)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true})
	a = typeInto(t, a, file)
	assert.Contains(t, a.info, "text/plain")

	a = typeInto(t, a, ".bak")
	assert.Equal(t, "not found", a.info)
}

func TestNewAppRequiresRegistry(t *testing.T) {
	_, err := NewApp(Options{})
	assert.Error(t, err)
}

func TestNewAppStartPath(t *testing.T) {
	app, err := NewApp(Options{
		Registry:  command.NewDefaultRegistry(&stubRevealer{}),
		StartPath: "/srv/recipes",
		Clipboard: &fakeClipboard{},
	})
	require.NoError(t, err)
	assert.Equal(t, "/srv/recipes", app.input.Value())
	assert.Equal(t, "Loading...", app.View())
}
