package reveal

import (
	"errors"
	"fmt"
	"os"
)

// Error kinds returned by Reveal. Match them with errors.Is.
var (
	ErrEmptyPath           = errors.New("empty path")
	ErrPathNotFound        = errors.New("path not found")
	ErrPathInaccessible    = errors.New("path inaccessible")
	ErrSpawn               = errors.New("could not start helper process")
	ErrEncoding            = errors.New("path is not valid UTF-8")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Error describes a failed reveal. Kind is one of the sentinels above, Err
// is the underlying cause (may be nil).
type Error struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %q: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// statError classifies a failed metadata lookup
func statError(path string, err error) *Error {
	kind := ErrPathInaccessible
	if errors.Is(err, os.ErrNotExist) {
		kind = ErrPathNotFound
	}
	return &Error{Op: "stat", Path: path, Kind: kind, Err: err}
}

func spawnError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Kind: ErrSpawn, Err: err}
}
