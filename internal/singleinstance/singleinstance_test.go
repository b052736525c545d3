//go:build unix || windows

package singleinstance

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLock(t *testing.T) {
	name := fmt.Sprintf("volumectl-test-%d", os.Getpid())

	release, err := GetLock(name)
	require.NoError(t, err)

	_, err = GetLock(name)
	assert.ErrorIs(t, err, InstanceAlreadyExistsError)

	release()

	release, err = GetLock(name)
	require.NoError(t, err)
	release()
}
