//go:build unix

package reveal

import "syscall"

// detachAttr puts the child in its own session so it outlives the caller
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
