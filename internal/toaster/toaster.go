// Package toaster is a logrus hook that turns log entries into desktop
// notifications, so a volume or mute change bound to a hotkey can be seen.
package toaster

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

const AppID = "volumectl"

type Toast struct {
	minLevel  logrus.Level
	formatter logrus.Formatter
}

func (t *Toast) Levels() []logrus.Level {
	return logrus.AllLevels[:t.minLevel+1]
}

// notification renders entry into a title and message.
func (t *Toast) notification(entry *logrus.Entry) (string, string, error) {
	msg, err := t.formatter.Format(entry)
	if err != nil {
		return "", "", err
	}

	f := map[string]interface{}{}
	if err := json.Unmarshal(msg, &f); err != nil {
		return "", "", err
	}

	l, ok := f["level"]
	if !ok {
		l = "Unknown"
	}

	m, ok := f["msg"].(string)
	if !ok || m == "" {
		m = "Unknown message."
	}

	return fmt.Sprintf("%s - %s", AppID, l), m, nil
}

// New returns a hook firing for entries at level or more severe. formatter
// must produce JSON.
func New(level logrus.Level, formatter logrus.Formatter) *Toast {
	return &Toast{
		minLevel:  level,
		formatter: formatter,
	}
}
