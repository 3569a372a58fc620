package tui

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// describePath returns a short description of what path points at
func describePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "not found"
		}
		return "not accessible"
	}
	if info.IsDir() {
		return "directory"
	}
	return getFileType(path) + ", " + FormatTime(info.ModTime())
}

// getFileType detects file type using magic numbers
func getFileType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "file"
	}
	// Drop parameters like "; charset=utf-8"
	name, _, _ := strings.Cut(mtype.String(), ";")
	return name
}
