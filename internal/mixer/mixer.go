// Package mixer decides which controls of an audio device to read or write
// for a volume or mute request. Devices expose very different sets of
// controls, so every operation walks a fixed order of control surfaces and
// stops at the first that works.
package mixer

import (
	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "mixer")

type Mixer struct {
	hal hal.Accessor
}

// New wraps a backend. A Mixer holds no device state of its own; every call
// queries the backend again.
func New(a hal.Accessor) *Mixer {
	return &Mixer{hal: a}
}

// ListDevices enumerates every device with its name and capabilities.
func (m *Mixer) ListDevices() ([]DeviceSummary, error) {
	log.Trace("Enter ListDevices")
	defer log.Trace("Exit ListDevices")

	ids, err := m.hal.Devices()
	if err != nil {
		return nil, ioError(err)
	}

	devices := make([]DeviceSummary, 0, len(ids))
	for _, id := range ids {
		d := DeviceSummary{ID: id, Capabilities: m.Probe(id)}
		if name, ok := m.hal.DeviceName(id); ok {
			d.Name = name
		} else {
			log.Debugf("device %d has no name", id)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

// Find resolves a device token against the current device list.
func (m *Mixer) Find(token string) (hal.DeviceID, error) {
	devices, err := m.ListDevices()
	if err != nil {
		return 0, err
	}
	return Locate(token, devices)
}

// target resolves both the device and the direction an operation acts on.
func (m *Mixer) target(token, direction string) (hal.DeviceID, hal.Scope, error) {
	id, err := m.Find(token)
	if err != nil {
		return 0, 0, err
	}
	scope, err := ResolveDirection(direction, m.Probe(id))
	if err != nil {
		return 0, 0, err
	}
	log.Debugf("token %q resolved to device %d %s", token, id, scope)
	return id, scope, nil
}

// GetVolume reads the volume of the device token names. An empty direction
// prefers output.
func (m *Mixer) GetVolume(token, direction string) (Reading, error) {
	log.Trace("Enter GetVolume")
	defer log.Trace("Exit GetVolume")

	id, scope, err := m.target(token, direction)
	if err != nil {
		return nil, err
	}
	return m.ReadVolume(id, scope)
}

// SetVolume writes level, which the caller has checked is within [0, 1].
func (m *Mixer) SetVolume(token string, level float32, direction string) error {
	log.Trace("Enter SetVolume")
	defer log.Trace("Exit SetVolume")

	id, scope, err := m.target(token, direction)
	if err != nil {
		return err
	}
	return m.WriteVolume(id, scope, level)
}

// MuteControl applies action and returns the resulting mute state.
func (m *Mixer) MuteControl(token string, action MuteAction, direction string) (bool, error) {
	log.Trace("Enter MuteControl")
	defer log.Trace("Exit MuteControl")

	id, scope, err := m.target(token, direction)
	if err != nil {
		return false, err
	}
	return m.ResolveMute(id, scope, action)
}
