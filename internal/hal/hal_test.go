package hal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type streamsOnly struct {
	Accessor
	buffers map[Scope][]uint32
	err     error
}

func (s streamsOnly) StreamConfiguration(id DeviceID, scope Scope) ([]uint32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.buffers[scope], nil
}

func TestChannelCount(t *testing.T) {
	a := streamsOnly{buffers: map[Scope][]uint32{
		Output: {2, 2, 1},
		Input:  {},
	}}
	assert.EqualValues(t, 5, ChannelCount(a, 1, Output))
	assert.EqualValues(t, 0, ChannelCount(a, 1, Input))
	assert.EqualValues(t, 0, ChannelCount(a, 1, Global))
}

func TestChannelCountFailureIsZero(t *testing.T) {
	a := streamsOnly{err: errors.New("kAudioHardwareBadObjectError")}
	assert.EqualValues(t, 0, ChannelCount(a, 1, Output))
}

func TestSelectorNames(t *testing.T) {
	assert.Equal(t, "volume", VolumeScalar.String())
	assert.Equal(t, "decibel", VolumeDecibel.String())
	assert.Equal(t, "input", Input.String())
	assert.Equal(t, "abcd", Control('a'<<24|'b'<<16|'c'<<8|'d').String())
	assert.Equal(t, "device 7 output volume master", Address{Device: 7, Control: VolumeScalar, Scope: Output}.String())
	assert.Equal(t, "device 7 input mute channel 2", Address{Device: 7, Control: Mute, Scope: Input, Channel: 2}.String())
}
