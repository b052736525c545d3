package mixer

import (
	"testing"

	"github.com/GregoryDosh/volumectl/internal/fixture"
	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMixer(t *testing.T, devices string) (*Mixer, *fixture.Accessor) {
	t.Helper()
	a, err := fixture.Parse([]byte(devices))
	require.NoError(t, err)
	return New(a), a
}

const desk = `
devices:
  - id: 42
    name: Built-in Output
    output:
      streams: [2]
      controls:
        - control: volume
          value: 0.5
        - control: mute
          muted: false
  - id: 99
    name: Logitech USB Headset
    input:
      streams: [1]
      controls:
        - control: volume
          value: 0.3
    output:
      streams: [2]
      controls:
        - control: volume
          value: 0.6
  - id: 134
    name: Logi Webcam Microphone
    input:
      streams: [1]
      controls:
        - control: volume
          value: 0.8
  - id: 200
`

func TestListDevices(t *testing.T) {
	m, _ := newMixer(t, desk)
	devices, err := m.ListDevices()
	require.NoError(t, err)
	assert.Equal(t, []DeviceSummary{
		{ID: 42, Name: "Built-in Output", Capabilities: Capabilities{SupportsOutput: true}},
		{ID: 99, Name: "Logitech USB Headset", Capabilities: Capabilities{SupportsInput: true, SupportsOutput: true}},
		{ID: 134, Name: "Logi Webcam Microphone", Capabilities: Capabilities{SupportsInput: true}},
		{ID: 200},
	}, devices)
}

func TestGetVolumeInputOnlyDevice(t *testing.T) {
	m, _ := newMixer(t, desk)
	r, err := m.GetVolume("134", "")
	require.NoError(t, err)
	assert.Equal(t, Reading{0.8}, r)
}

func TestGetVolumeHybridPrefersOutput(t *testing.T) {
	m, _ := newMixer(t, desk)
	r, err := m.GetVolume("99", "")
	require.NoError(t, err)
	assert.Equal(t, Reading{0.6}, r)

	r, err = m.GetVolume("99", "INPUT")
	require.NoError(t, err)
	assert.Equal(t, Reading{0.3}, r)
}

func TestGetVolumeErrors(t *testing.T) {
	m, _ := newMixer(t, desk)

	_, err := m.GetVolume("headphones", "")
	assert.ErrorIs(t, err, DeviceNotFoundError)

	_, err = m.GetVolume("42", "input")
	assert.ErrorIs(t, err, UnsupportedDirectionError)
	var de *DirectionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, hal.Input, de.Direction)

	_, err = m.GetVolume("42", "sideways")
	assert.ErrorIs(t, err, InvalidDirectionArgumentError)

	// unnamed devices cannot be selected by id
	_, err = m.GetVolume("200", "")
	assert.ErrorIs(t, err, DeviceNotFoundError)
}

func TestSetVolumeBySubstring(t *testing.T) {
	m, a := newMixer(t, desk)
	require.NoError(t, m.SetVolume("logi", 0.4, ""))

	assert.Equal(t, []fixture.Write{
		{Address: hal.Address{Device: 99, Control: hal.VolumeScalar, Scope: hal.Output}, Value: 0.4},
	}, a.Writes())
}

func TestMuteControl(t *testing.T) {
	m, a := newMixer(t, desk)

	muted, err := m.MuteControl("built-in", MuteToggle, "")
	require.NoError(t, err)
	assert.True(t, muted)

	muted, err = m.MuteControl("built-in", MuteOff, "output")
	require.NoError(t, err)
	assert.False(t, muted)

	assert.Len(t, a.Writes(), 2)

	_, err = m.MuteControl("134", MuteOn, "")
	assert.ErrorIs(t, err, MuteNotSupportedError)
}
