package reveal

import (
	"strings"
	"unicode/utf8"

	"github.com/lumipallolabs/rms/internal/logging"
)

const (
	fileManagerDest  = "org.freedesktop.FileManager1"
	fileManagerPath  = "/org/freedesktop/FileManager1"
	fileManagerIface = "org.freedesktop.FileManager1"
	showItemsMethod  = fileManagerIface + ".ShowItems"
)

// Linux reveals paths through org.freedesktop.FileManager1, falling back to
// xdg-open on the containing directory.
type Linux struct {
	launcher Launcher
	stat     StatFunc
	// bus is nil for the dbus-send backend
	bus ShowItemsCaller
}

func (l *Linux) Reveal(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}

	// dbus-send splits array elements on commas, so such paths can't go
	// through ShowItems. See https://gitlab.freedesktop.org/dbus/dbus/-/issues/76
	if strings.Contains(path, ",") {
		return l.openContainer(path)
	}
	return l.showItems(path)
}

// openContainer opens path if it is a directory, its parent otherwise.
// xdg-open can't highlight an item, only open a folder.
func (l *Linux) openContainer(path string) error {
	info, err := l.stat(path)
	if err != nil {
		return statError(path, err)
	}

	dir := path
	if !info.IsDir() {
		dir = parentDir(path)
		if !utf8.ValidString(dir) {
			return &Error{Op: "xdg-open", Path: path, Kind: ErrEncoding}
		}
	}

	logging.Reveal.Debug().Str("path", path).Str("dir", dir).Msg("comma in path, using xdg-open")
	if err := l.launcher.Start("xdg-open", dir); err != nil {
		return spawnError("xdg-open", path, err)
	}
	return nil
}

// parentDir drops the last component of p without cleaning the rest, so a
// ".." after a symlink still resolves through the link.
func parentDir(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "."
	}
	dir := strings.TrimRight(p[:i], "/")
	if dir == "" {
		return "/"
	}
	return dir
}

func (l *Linux) showItems(path string) error {
	// Bus strings must be valid UTF-8
	if !utf8.ValidString(path) {
		return &Error{Op: "ShowItems", Path: path, Kind: ErrEncoding}
	}
	uri := "file://" + path

	if l.bus != nil {
		err := l.bus.ShowItems([]string{uri}, "")
		if err == nil {
			logging.Reveal.Debug().Str("uri", uri).Msg("ShowItems sent on session bus")
			return nil
		}
		logging.Reveal.Warn().Err(err).Str("uri", uri).Msg("session bus unavailable, falling back to dbus-send")
	}

	args := dbusSendArgs(uri)
	logging.Reveal.Debug().Strs("args", args).Msg("dbus-send ShowItems")
	if err := l.launcher.StartDetached("dbus-send", args...); err != nil {
		return spawnError("dbus-send", path, err)
	}
	return nil
}

// dbusSendArgs builds the dbus-send invocation for ShowItems([uri], "")
func dbusSendArgs(uri string) []string {
	return []string{
		"--session",
		"--dest=" + fileManagerDest,
		"--type=method_call",
		fileManagerPath,
		showItemsMethod,
		"array:string:" + uri,
		"string:",
	}
}
