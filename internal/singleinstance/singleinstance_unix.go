//go:build unix

package singleinstance

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// GetLock takes an exclusive flock on a file named after name in the temp
// directory. The returned function releases it.
func GetLock(name string) (func(), error) {
	f, err := os.OpenFile(filepath.Join(os.TempDir(), name+".lock"), os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, InstanceAlreadyExistsError
		}
		return nil, err
	}
	return func() {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
	}, nil
}
