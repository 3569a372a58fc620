package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	Debug  zerolog.Logger
	Reveal zerolog.Logger
)

// out is shared by every logger so the destination can change while
// helper reapers are still logging.
var out = &output{w: io.Discard}

type output struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

func (o *output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

func (o *output) set(w io.Writer, c io.Closer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closer != nil {
		_ = o.closer.Close()
	}
	o.w = w
	o.closer = c
}

func init() {
	base := zerolog.New(out).With().Timestamp().Logger()
	Debug = base.With().Str("component", "ui").Logger()
	Reveal = base.With().Str("component", "reveal").Logger()

	// Silent until the config layer enables debug output (RMS_DEBUG or
	// debug: true)
	Disable()
}

// Disable discards everything and closes any open debug.log
func Disable() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	out.set(io.Discard, nil)
}

// Enable opens debug.log in dir (the working directory if dir is empty) and
// points every logger at it. Falls back to stderr if the file can't be opened.
func Enable(dir string) {
	path := "debug.log"
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err == nil {
			path = filepath.Join(dir, "debug.log")
		}
	}

	debugFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		setOutput(zerolog.ConsoleWriter{Out: os.Stderr}, nil)
		return
	}
	setOutput(debugFile, debugFile)
}

// SetOutput points every logger at w. Used by tests to capture output.
func SetOutput(w io.Writer) {
	setOutput(w, nil)
}

func setOutput(w io.Writer, c io.Closer) {
	out.set(w, c)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
