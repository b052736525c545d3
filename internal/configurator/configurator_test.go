package configurator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(fn, []byte(body), 0644))
	return fn
}

func TestMissingOptionalConfig(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "nope.yml"), false)
	require.NoError(t, err)
	assert.Equal(t, BackendPlatform, c.Backend)
	assert.Empty(t, c.Aliases)
}

func TestMissingRequiredConfig(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig(t *testing.T) {
	fn := writeConfig(t, `
aliases:
  Mic: logi
  speakers: "42"
`)
	c, err := New(fn, true)
	require.NoError(t, err)
	assert.Equal(t, BackendPlatform, c.Backend)
	assert.Equal(t, "logi", c.ResolveAlias("mic"))
	assert.Equal(t, "42", c.ResolveAlias("SPEAKERS"))
	assert.Equal(t, "headset", c.ResolveAlias("headset"))
}

func TestFixtureBackend(t *testing.T) {
	fn := writeConfig(t, "backend: Fixture\nfixture: /tmp/devices.yml\n")
	c, err := New(fn, true)
	require.NoError(t, err)
	assert.Equal(t, BackendFixture, c.Backend)
	assert.Equal(t, "/tmp/devices.yml", c.Fixture)

	fn = writeConfig(t, "backend: fixture\n")
	_, err = New(fn, true)
	assert.ErrorIs(t, err, MissingFixtureError)
}

func TestBadConfig(t *testing.T) {
	_, err := New(writeConfig(t, "backend: pulse\n"), true)
	assert.ErrorIs(t, err, UnknownBackendError)

	_, err = New(writeConfig(t, "aliases: [\n"), true)
	assert.Error(t, err)
}
