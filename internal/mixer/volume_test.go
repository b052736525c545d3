package mixer

import (
	"testing"

	"github.com/GregoryDosh/volumectl/internal/fixture"
	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVolumeCascade(t *testing.T) {
	tests := []struct {
		name     string
		controls string
		want     Reading
	}{
		{
			name: "master scalar only",
			controls: `
        - control: volume
          value: 0.7`,
			want: Reading{0.7},
		},
		{
			name: "scalar wins over decibel and channels",
			controls: `
        - control: decibel
          value: -12
        - control: volume
          value: 0.25
        - control: volume
          channel: 1
          value: 0.9`,
			want: Reading{0.25},
		},
		{
			name: "decibel is passed through",
			controls: `
        - control: decibel
          value: -12.5
        - control: gain
          value: 0.4`,
			want: Reading{-12.5},
		},
		{
			name: "unreadable master falls through to decibel",
			controls: `
        - control: volume
          read_error: true
        - control: decibel
          value: -3`,
			want: Reading{-3},
		},
		{
			name: "gain",
			controls: `
        - control: gain
          value: 0.4`,
			want: Reading{0.4},
		},
		{
			name: "per channel",
			controls: `
        - control: volume
          channel: 1
          value: 0.5
        - control: volume
          channel: 2
          value: 0.6`,
			want: Reading{0.5, 0.6},
		},
		{
			name: "failed channel keeps its position",
			controls: `
        - control: volume
          channel: 1
          read_error: true
        - control: volume
          channel: 2
          value: 0.6`,
			want: Reading{FailedChannel, 0.6},
		},
		{
			name: "missing channel keeps its position",
			controls: `
        - control: volume
          channel: 2
          value: 0.6`,
			want: Reading{FailedChannel, 0.6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMixer(t, `
devices:
  - id: 1
    name: Device
    output:
      streams: [2]
      controls:`+tt.controls)
			got, err := m.ReadVolume(1, hal.Output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadVolumeBalancedChannelsCollapse(t *testing.T) {
	m, _ := newMixer(t, `
devices:
  - id: 1
    output:
      streams: [1, 1, 1]
      controls:
        - control: volume
          channel: 1
          value: 0.5
        - control: volume
          channel: 2
          value: 0.5
        - control: volume
          channel: 3
          value: 0.5
`)
	r, err := m.ReadVolume(1, hal.Output)
	require.NoError(t, err)
	assert.Equal(t, Reading{0.5, 0.5, 0.5}, r)
	assert.Equal(t, Reading{0.5}, r.Distinct())
}

func TestReadVolumeNoVolumeAvailable(t *testing.T) {
	tests := []struct {
		name    string
		devices string
	}{
		{
			name: "every channel fails",
			devices: `
devices:
  - id: 1
    output:
      streams: [2]
      controls:
        - control: volume
          channel: 1
          read_error: true
        - control: volume
          channel: 2
          read_error: true
`,
		},
		{
			name: "channels out of range",
			devices: `
devices:
  - id: 1
    output:
      streams: [2]
      controls:
        - control: volume
          channel: 1
          value: -20
        - control: volume
          channel: 2
          value: 3
`,
		},
		{
			name: "no channels at all",
			devices: `
devices:
  - id: 1
    output:
      streams: []
`,
		},
		{
			name: "channels without controls",
			devices: `
devices:
  - id: 1
    output:
      streams: [2]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMixer(t, tt.devices)
			_, err := m.ReadVolume(1, hal.Output)
			assert.ErrorIs(t, err, NoVolumeAvailableError)
		})
	}
}

const masterAndChannels = `
devices:
  - id: 1
    output:
      streams: [2]
      controls:
        - control: volume
          value: 0.1
        - control: volume
          channel: 1
          value: 0.1
        - control: volume
          channel: 2
          value: 0.1
`

func TestWriteVolumePrefersMaster(t *testing.T) {
	m, a := newMixer(t, masterAndChannels)
	require.NoError(t, m.WriteVolume(1, hal.Output, 0.75))
	assert.Equal(t, []fixture.Write{
		{Address: hal.Address{Device: 1, Control: hal.VolumeScalar, Scope: hal.Output}, Value: 0.75},
	}, a.Writes())
}

func TestWriteVolumeFallsBackToChannels(t *testing.T) {
	tests := []struct {
		name   string
		master string
	}{
		{"no master", ""},
		{"master not settable", `
        - control: volume
          settable: false`},
		{"master write fails", `
        - control: volume
          write_error: true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, a := newMixer(t, `
devices:
  - id: 1
    output:
      streams: [2, 1]
      controls:`+tt.master+`
        - control: volume
          channel: 1
        - control: volume
          channel: 2
        - control: volume
          channel: 3
`)
			require.NoError(t, m.WriteVolume(1, hal.Output, 0.3))
			assert.Equal(t, []fixture.Write{
				{Address: hal.Address{Device: 1, Control: hal.VolumeScalar, Scope: hal.Output, Channel: 1}, Value: 0.3},
				{Address: hal.Address{Device: 1, Control: hal.VolumeScalar, Scope: hal.Output, Channel: 2}, Value: 0.3},
				{Address: hal.Address{Device: 1, Control: hal.VolumeScalar, Scope: hal.Output, Channel: 3}, Value: 0.3},
			}, a.Writes())
		})
	}
}

func TestWriteVolumeStopsAtFailedChannel(t *testing.T) {
	m, a := newMixer(t, `
devices:
  - id: 1
    output:
      streams: [3]
      controls:
        - control: volume
          channel: 1
        - control: volume
          channel: 2
          write_error: true
        - control: volume
          channel: 3
`)
	err := m.WriteVolume(1, hal.Output, 0.3)
	require.ErrorIs(t, err, ChannelWriteFailedError)
	assert.ErrorIs(t, err, fixture.SimulatedFailure)

	var cwe *ChannelWriteError
	require.ErrorAs(t, err, &cwe)
	assert.EqualValues(t, 2, cwe.Channel)

	assert.Equal(t, []fixture.Write{
		{Address: hal.Address{Device: 1, Control: hal.VolumeScalar, Scope: hal.Output, Channel: 1}, Value: 0.3},
	}, a.Writes())
}

func TestWriteVolumeSkipsUnsettableChannels(t *testing.T) {
	m, a := newMixer(t, `
devices:
  - id: 1
    input:
      streams: [3]
      controls:
        - control: volume
          channel: 1
          settable: false
        - control: volume
          channel: 3
`)
	require.NoError(t, m.WriteVolume(1, hal.Input, 1))
	assert.Equal(t, []fixture.Write{
		{Address: hal.Address{Device: 1, Control: hal.VolumeScalar, Scope: hal.Input, Channel: 3}, Value: 1},
	}, a.Writes())
}

func TestWriteVolumeNoChannels(t *testing.T) {
	m, a := newMixer(t, `
devices:
  - id: 1
    output:
      streams: [0]
  - id: 2
    output:
      streams: [2]
      controls:
        - control: volume
          channel: 1
          settable: false
`)
	assert.ErrorIs(t, m.WriteVolume(1, hal.Output, 0.5), NoChannelsAvailableError)
	assert.ErrorIs(t, m.WriteVolume(2, hal.Output, 0.5), NoChannelsAvailableError)
	assert.Empty(t, a.Writes())
}
