//go:build windows

package toaster

import (
	"github.com/go-toast/toast"
	"github.com/sirupsen/logrus"
)

// Supported reports whether Fire can show notifications on this platform.
const Supported = true

func (t *Toast) Fire(entry *logrus.Entry) error {
	title, message, err := t.notification(entry)
	if err != nil {
		return err
	}

	notification := toast.Notification{
		AppID:   AppID,
		Title:   title,
		Message: message,
	}
	return notification.Push()
}
