//go:build windows

package reveal

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachAttr starts the child without a console in its own process group
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
