package toaster

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	assert.Equal(t, []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel},
		New(logrus.WarnLevel, &logrus.JSONFormatter{}).Levels())
	assert.Len(t, New(logrus.InfoLevel, &logrus.JSONFormatter{}).Levels(), 5)
}

func TestNotification(t *testing.T) {
	toast := New(logrus.InfoLevel, &logrus.JSONFormatter{})
	entry := logrus.NewEntry(logrus.New())
	entry.Level = logrus.InfoLevel
	entry.Message = "output volume of Speakers set to 40%"

	title, message, err := toast.notification(entry)
	require.NoError(t, err)
	assert.Equal(t, "volumectl - info", title)
	assert.Equal(t, "output volume of Speakers set to 40%", message)

	entry.Message = ""
	_, message, err = toast.notification(entry)
	require.NoError(t, err)
	assert.Equal(t, "Unknown message.", message)
}

func TestNotificationNeedsJSON(t *testing.T) {
	toast := New(logrus.InfoLevel, &logrus.TextFormatter{})
	entry := logrus.NewEntry(logrus.New())
	entry.Message = "hello"
	_, _, err := toast.notification(entry)
	assert.Error(t, err)
}
