//go:build windows
// +build windows

package monitoring

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// win32API implements WindowAPI on top of user32. All raw syscall use
// lives here; return codes and buffer lengths are validated before
// anything is exposed to callers.
type win32API struct{}

// NewWindowAPI returns the platform window API.
func NewWindowAPI() WindowAPI {
	return win32API{}
}

func (win32API) ForegroundWindow() (Handle, bool) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, false
	}
	return Handle(hwnd), true
}

func (win32API) WindowTitle(h Handle) (string, bool) {
	length, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if length == 0 {
		return "", false
	}

	// One extra slot for the terminator.
	buf := make([]uint16, length+1)
	copied, _, _ := procGetWindowTextW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if copied == 0 {
		return "", false
	}

	return windows.UTF16ToString(buf[:copied]), true
}

func (win32API) WindowOwnerPID(h Handle) (uint32, bool) {
	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return 0, false
	}
	return pid, true
}
