//go:build profile && windows

package profiler

import "syscall"

// viewerProcAttr keeps the viewer from opening a console window.
func viewerProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true}
}
