// Package hal describes the property level contract every audio backend
// implements. A backend knows how to find devices and how to read or write
// one control on one element of one device; it makes no decisions about
// which control to use.
package hal

import (
	"errors"
	"fmt"
)

var (
	PropertyNotPresentError  = errors.New("property not present")
	PropertyNotSettableError = errors.New("property not settable")
)

// DeviceID is the handle the audio subsystem uses for a device. It is only
// stable for the lifetime of the process.
type DeviceID uint32

// Scope selects which side of a device a property belongs to.
type Scope uint32

const (
	Global Scope = 'g'<<24 | 'l'<<16 | 'o'<<8 | 'b'
	Input  Scope = 'i'<<24 | 'n'<<16 | 'p'<<8 | 't'
	Output Scope = 'o'<<24 | 'u'<<16 | 't'<<8 | 'p'
)

func (s Scope) String() string {
	switch s {
	case Input:
		return "input"
	case Output:
		return "output"
	case Global:
		return "global"
	}
	return fourCC(uint32(s))
}

// Control is the four byte selector of a device property.
type Control uint32

const (
	VolumeScalar        Control = 'v'<<24 | 'o'<<16 | 'l'<<8 | 'm'
	VolumeDecibel       Control = 'v'<<24 | 'o'<<16 | 'l'<<8 | 'd'
	Gain                Control = 'g'<<24 | 'a'<<16 | 'i'<<8 | 'n'
	Mute                Control = 'm'<<24 | 'u'<<16 | 't'<<8 | 'e'
	StreamConfiguration Control = 's'<<24 | 'l'<<16 | 'a'<<8 | 'y'
)

func (c Control) String() string {
	switch c {
	case VolumeScalar:
		return "volume"
	case VolumeDecibel:
		return "decibel"
	case Gain:
		return "gain"
	case Mute:
		return "mute"
	case StreamConfiguration:
		return "stream-configuration"
	}
	return fourCC(uint32(c))
}

// MasterChannel is the element that addresses a control as a whole rather
// than one of its channels. Channels are numbered from 1.
const MasterChannel uint32 = 0

// Address names one property on one element of a device.
type Address struct {
	Device  DeviceID
	Control Control
	Scope   Scope
	Channel uint32
}

func (a Address) String() string {
	if a.Channel == MasterChannel {
		return fmt.Sprintf("device %d %s %s master", a.Device, a.Scope, a.Control)
	}
	return fmt.Sprintf("device %d %s %s channel %d", a.Device, a.Scope, a.Control, a.Channel)
}

// Accessor is implemented by every audio backend.
type Accessor interface {
	// Devices lists device identifiers in enumeration order.
	Devices() ([]DeviceID, error)
	DeviceName(id DeviceID) (string, bool)
	// StreamConfiguration returns the channel count of every buffer the
	// device exposes for scope.
	StreamConfiguration(id DeviceID, scope Scope) ([]uint32, error)

	HasProperty(addr Address) bool
	IsSettable(addr Address) (bool, error)
	ReadFloat(addr Address) (float32, error)
	ReadBool(addr Address) (bool, error)
	WriteFloat(addr Address, v float32) error
	WriteBool(addr Address, v bool) error
}

// ChannelCount sums the channels of every buffer of scope. Devices without a
// stream configuration for scope have zero channels there.
func ChannelCount(a Accessor, id DeviceID, scope Scope) uint32 {
	buffers, err := a.StreamConfiguration(id, scope)
	if err != nil {
		return 0
	}
	var n uint32
	for _, b := range buffers {
		n += b
	}
	return n
}

func fourCC(v uint32) string {
	return string([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}
