package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoDevices = `
devices:
  - id: 42
    name: Built-in Output
    output:
      streams: [2]
      controls:
        - control: volume
          value: 0.5
        - control: mute
          muted: true
          settable: false
  - id: 134
    name: USB Microphone
    input:
      streams: [1]
      streams_error: false
      controls:
        - control: volume
          channel: 1
          value: 0.25
          write_error: true
        - control: gain
          read_error: true
`

func TestParse(t *testing.T) {
	assert := require.New(t)
	a, err := Parse([]byte(twoDevices))
	assert.NoError(err)

	ids, err := a.Devices()
	assert.NoError(err)
	assert.Equal([]hal.DeviceID{42, 134}, ids)

	name, ok := a.DeviceName(134)
	assert.True(ok)
	assert.Equal("USB Microphone", name)

	_, ok = a.DeviceName(7)
	assert.False(ok)

	streams, err := a.StreamConfiguration(42, hal.Output)
	assert.NoError(err)
	assert.Equal([]uint32{2}, streams)

	_, err = a.StreamConfiguration(42, hal.Input)
	assert.ErrorIs(err, hal.PropertyNotPresentError)
}

func TestControlsDefaultToSettable(t *testing.T) {
	a, err := Parse([]byte(twoDevices))
	require.NoError(t, err)

	settable, err := a.IsSettable(hal.Address{Device: 42, Control: hal.VolumeScalar, Scope: hal.Output})
	require.NoError(t, err)
	assert.True(t, settable)

	settable, err = a.IsSettable(hal.Address{Device: 42, Control: hal.Mute, Scope: hal.Output})
	require.NoError(t, err)
	assert.False(t, settable)
}

func TestReadsAndWrites(t *testing.T) {
	a, err := Parse([]byte(twoDevices))
	require.NoError(t, err)

	master := hal.Address{Device: 42, Control: hal.VolumeScalar, Scope: hal.Output}
	v, err := a.ReadFloat(master)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-6)

	require.NoError(t, a.WriteFloat(master, 0.75))
	v, err = a.ReadFloat(master)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, v, 1e-6)

	mute := hal.Address{Device: 42, Control: hal.Mute, Scope: hal.Output}
	muted, err := a.ReadBool(mute)
	require.NoError(t, err)
	assert.True(t, muted)
	assert.ErrorIs(t, a.WriteBool(mute, false), hal.PropertyNotSettableError)

	channel := hal.Address{Device: 134, Control: hal.VolumeScalar, Scope: hal.Input, Channel: 1}
	assert.ErrorIs(t, a.WriteFloat(channel, 0.1), SimulatedFailure)

	_, err = a.ReadFloat(hal.Address{Device: 134, Control: hal.Gain, Scope: hal.Input})
	assert.ErrorIs(t, err, SimulatedFailure)

	_, err = a.ReadFloat(hal.Address{Device: 134, Control: hal.VolumeDecibel, Scope: hal.Input})
	assert.ErrorIs(t, err, hal.PropertyNotPresentError)

	assert.Equal(t, []Write{{Address: master, Value: 0.75}}, a.Writes())
}

func TestParseRejectsBadFixtures(t *testing.T) {
	_, err := Parse([]byte("devices:\n  - id: 1\n    output:\n      controls:\n        - control: balance\n"))
	assert.ErrorIs(t, err, UnknownControlError)

	_, err = Parse([]byte("devices:\n  - id: 1\n  - id: 1\n"))
	assert.ErrorIs(t, err, DuplicateDeviceError)

	_, err = Parse([]byte("devices: [\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "devices.yml")
	require.NoError(t, os.WriteFile(fn, []byte(twoDevices), 0644))

	a, err := Load(fn)
	require.NoError(t, err)
	assert.True(t, a.HasProperty(hal.Address{Device: 134, Control: hal.VolumeScalar, Scope: hal.Input, Channel: 1}))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
