// Package reveal opens the platform file manager with a given path selected.
//
// Explorer is used on Windows and Finder on macOS. On Linux the
// org.freedesktop.FileManager1 bus interface is tried, with xdg-open as the
// fallback for paths it cannot carry. The implementation is picked once
// from the running OS and injected into whatever dispatches commands.
package reveal

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// Revealer shows a path in the native file manager
type Revealer interface {
	Reveal(path string) error
}

// StatFunc looks up file metadata; os.Stat in production
type StatFunc func(name string) (fs.FileInfo, error)

// LinuxBackend selects how ShowItems is delivered on Linux
type LinuxBackend string

const (
	// BackendDBusSend spawns a detached dbus-send process
	BackendDBusSend LinuxBackend = "dbus-send"
	// BackendSessionBus talks to the session bus directly
	BackendSessionBus LinuxBackend = "session-bus"
)

// ParseLinuxBackend validates a configured backend name
func ParseLinuxBackend(s string) (LinuxBackend, bool) {
	switch LinuxBackend(s) {
	case BackendDBusSend, "":
		return BackendDBusSend, true
	case BackendSessionBus:
		return BackendSessionBus, true
	}
	return "", false
}

type options struct {
	launcher Launcher
	stat     StatFunc
	backend  LinuxBackend
	bus      ShowItemsCaller
}

// Option configures New
type Option func(*options)

// WithLauncher replaces the process launcher
func WithLauncher(l Launcher) Option {
	return func(o *options) { o.launcher = l }
}

// WithStat replaces the metadata lookup used on Linux
func WithStat(f StatFunc) Option {
	return func(o *options) { o.stat = f }
}

// WithLinuxBackend selects the ShowItems delivery mechanism
func WithLinuxBackend(b LinuxBackend) Option {
	return func(o *options) { o.backend = b }
}

// WithBus replaces the session bus client used by BackendSessionBus
func WithBus(c ShowItemsCaller) Option {
	return func(o *options) { o.bus = c }
}

// New returns the Revealer for goos (a runtime.GOOS value)
func New(goos string, opts ...Option) Revealer {
	o := options{
		launcher: ExecLauncher{},
		stat:     os.Stat,
		backend:  BackendDBusSend,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch goos {
	case "windows":
		return &Windows{launcher: o.launcher}
	case "darwin":
		return &Darwin{launcher: o.launcher}
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		l := &Linux{launcher: o.launcher, stat: o.stat}
		if o.backend == BackendSessionBus {
			l.bus = o.bus
			if l.bus == nil {
				l.bus = SessionBus{}
			}
		}
		return l
	}
	return unsupported{goos: goos}
}

// Default returns the Revealer for the running OS
func Default(opts ...Option) Revealer {
	return New(runtime.GOOS, opts...)
}

type unsupported struct {
	goos string
}

func (u unsupported) Reveal(path string) error {
	return &Error{
		Op:   "reveal",
		Path: path,
		Kind: ErrUnsupportedPlatform,
		Err:  fmt.Errorf("no file manager integration for %s", u.goos),
	}
}

func checkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return &Error{Op: "reveal", Path: path, Kind: ErrEmptyPath}
	}
	return nil
}
