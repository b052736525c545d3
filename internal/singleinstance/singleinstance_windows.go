//go:build windows

package singleinstance

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// GetLock takes a named mutex. The returned function releases it.
func GetLock(name string) (func(), error) {
	// https://docs.microsoft.com/en-us/windows/win32/api/synchapi/nf-synchapi-createmutexexw
	n, err := syscall.UTF16PtrFromString("Local\\" + name)
	if err != nil {
		return nil, err
	}

	var flags uint32 = 0x00000001
	var desiredAccess uint32 = windows.SYNCHRONIZE
	h, err := windows.CreateMutexEx(nil, n, flags, desiredAccess)
	if err != nil {
		if h != 0 {
			windows.CloseHandle(h)
		}
		return nil, InstanceAlreadyExistsError
	}
	return func() {
		windows.ReleaseMutex(h)
		windows.CloseHandle(h)
	}, nil
}
