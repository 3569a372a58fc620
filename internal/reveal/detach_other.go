//go:build !unix && !windows

package reveal

import "syscall"

// detachAttr is a no-op on platforms without session control
func detachAttr() *syscall.SysProcAttr {
	return nil
}
