//go:build !windows

package toaster

import "github.com/sirupsen/logrus"

// Supported reports whether Fire can show notifications on this platform.
const Supported = false

func (t *Toast) Fire(entry *logrus.Entry) error {
	_, _, err := t.notification(entry)
	return err
}
