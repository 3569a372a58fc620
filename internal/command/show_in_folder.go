package command

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumipallolabs/rms/internal/reveal"
)

// ShowInFolderName is the command the host invokes to reveal a path
const ShowInFolderName = "show_in_folder"

// Reveal error kinds
const (
	KindEmptyPath           = "empty_path"
	KindPathNotFound        = "path_not_found"
	KindPathInaccessible    = "path_inaccessible"
	KindSpawnFailed         = "spawn_failed"
	KindEncoding            = "encoding"
	KindUnsupportedPlatform = "unsupported_platform"
)

// ShowInFolderArgs is the argument object of show_in_folder
type ShowInFolderArgs struct {
	Path string `json:"path"`
}

// ShowInFolder returns the show_in_folder handler backed by r
func ShowInFolder(r reveal.Revealer) Handler {
	return func(_ context.Context, raw json.RawMessage) (any, error) {
		var args ShowInFolderArgs
		if err := DecodeArgs(ShowInFolderName, raw, &args); err != nil {
			return nil, err
		}
		if err := r.Reveal(args.Path); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// ClassifyReveal maps reveal errors to payload kinds
func ClassifyReveal(err error) *ErrorPayload {
	var rerr *reveal.Error
	if !errors.As(err, &rerr) {
		return nil
	}

	kinds := []struct {
		target error
		kind   string
	}{
		{reveal.ErrEmptyPath, KindEmptyPath},
		{reveal.ErrPathNotFound, KindPathNotFound},
		{reveal.ErrPathInaccessible, KindPathInaccessible},
		{reveal.ErrSpawn, KindSpawnFailed},
		{reveal.ErrEncoding, KindEncoding},
		{reveal.ErrUnsupportedPlatform, KindUnsupportedPlatform},
	}
	for _, k := range kinds {
		if errors.Is(rerr.Kind, k.target) {
			return &ErrorPayload{Kind: k.kind, Message: err.Error(), Path: rerr.Path}
		}
	}
	return &ErrorPayload{Kind: KindInternal, Message: err.Error(), Path: rerr.Path}
}

// NewDefaultRegistry registers the shell's commands against r
func NewDefaultRegistry(r reveal.Revealer) *Registry {
	reg := NewRegistry()
	reg.Register(ShowInFolderName, ShowInFolder(r))
	reg.Classify(ClassifyReveal)
	return reg
}
