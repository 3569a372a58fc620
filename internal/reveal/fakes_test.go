package reveal

import (
	"errors"
	"io/fs"
	"time"
)

type launch struct {
	name     string
	args     []string
	detached bool
}

type fakeLauncher struct {
	launches []launch
	err      error
}

func (f *fakeLauncher) Start(name string, args ...string) error {
	f.launches = append(f.launches, launch{name: name, args: args})
	return f.err
}

func (f *fakeLauncher) StartDetached(name string, args ...string) error {
	f.launches = append(f.launches, launch{name: name, args: args, detached: true})
	return f.err
}

type fakeInfo struct {
	name string
	dir  bool
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

func (i fakeInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir
	}
	return 0
}

// statMap answers stat calls from a fixed table
func statMap(entries map[string]bool) StatFunc {
	return func(name string) (fs.FileInfo, error) {
		dir, ok := entries[name]
		if !ok {
			return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
		}
		return fakeInfo{name: name, dir: dir}, nil
	}
}

type fakeBus struct {
	calls []busCall
	err   error
}

type busCall struct {
	uris      []string
	startupID string
}

func (b *fakeBus) ShowItems(uris []string, startupID string) error {
	b.calls = append(b.calls, busCall{uris: uris, startupID: startupID})
	return b.err
}

var errBoom = errors.New("boom")
