package mixer

import (
	"fmt"

	"github.com/GregoryDosh/volumectl/internal/hal"
)

// masterReadOrder is the order master controls are tried when reading. Decibel
// and gain values are passed through as read.
var masterReadOrder = []hal.Control{hal.VolumeScalar, hal.VolumeDecibel, hal.Gain}

// ReadVolume returns the first master control that can be read for scope, or
// one value per channel when the device only has channel controls.
func (m *Mixer) ReadVolume(id hal.DeviceID, scope hal.Scope) (Reading, error) {
	for _, c := range masterReadOrder {
		addr := hal.Address{Device: id, Control: c, Scope: scope, Channel: hal.MasterChannel}
		if !m.hal.HasProperty(addr) {
			continue
		}
		v, err := m.hal.ReadFloat(addr)
		if err != nil {
			log.Debugf("unable to read %s: %v", addr, err)
			continue
		}
		log.Debugf("read %s = %f", addr, v)
		return Reading{v}, nil
	}

	return m.readChannels(id, scope)
}

func (m *Mixer) readChannels(id hal.DeviceID, scope hal.Scope) (Reading, error) {
	n := hal.ChannelCount(m.hal, id, scope)
	if n == 0 {
		return nil, fmt.Errorf("%w: device %d has no %s channels", NoVolumeAvailableError, id, scope)
	}

	r := make(Reading, 0, n)
	for ch := uint32(1); ch <= n; ch++ {
		addr := hal.Address{Device: id, Control: hal.VolumeScalar, Scope: scope, Channel: ch}
		if !m.hal.HasProperty(addr) {
			log.Debugf("%s not present", addr)
			r = append(r, FailedChannel)
			continue
		}
		v, err := m.hal.ReadFloat(addr)
		if err != nil {
			log.Debugf("unable to read %s: %v", addr, err)
			r = append(r, FailedChannel)
			continue
		}
		r = append(r, v)
	}

	if !r.Valid() {
		return nil, fmt.Errorf("%w: device %d %s channels read %v", NoVolumeAvailableError, id, scope, []float32(r))
	}
	return r, nil
}

// WriteVolume sets scope to level through the master control when it takes
// the write, otherwise through every settable channel control in order.
// level must already be within [0, 1].
func (m *Mixer) WriteVolume(id hal.DeviceID, scope hal.Scope, level float32) error {
	master := hal.Address{Device: id, Control: hal.VolumeScalar, Scope: scope, Channel: hal.MasterChannel}
	if m.settable(master) {
		err := m.hal.WriteFloat(master, level)
		if err == nil {
			log.Debugf("wrote %s = %f", master, level)
			return nil
		}
		log.Debugf("unable to write %s, falling back to channels: %v", master, err)
	}

	n := hal.ChannelCount(m.hal, id, scope)
	if n == 0 {
		return fmt.Errorf("%w: device %d has no %s channels", NoChannelsAvailableError, id, scope)
	}

	written := 0
	for ch := uint32(1); ch <= n; ch++ {
		addr := hal.Address{Device: id, Control: hal.VolumeScalar, Scope: scope, Channel: ch}
		if !m.settable(addr) {
			log.Debugf("skipping %s", addr)
			continue
		}
		if err := m.hal.WriteFloat(addr, level); err != nil {
			return &ChannelWriteError{Channel: ch, Err: err}
		}
		written++
	}

	if written == 0 {
		return fmt.Errorf("%w: none of the %d %s channels of device %d are settable", NoChannelsAvailableError, n, scope, id)
	}
	log.Debugf("wrote %f to %d of %d %s channels", level, written, n, scope)
	return nil
}

// settable reports whether addr exists and accepts writes.
func (m *Mixer) settable(addr hal.Address) bool {
	if !m.hal.HasProperty(addr) {
		return false
	}
	ok, err := m.hal.IsSettable(addr)
	if err != nil {
		log.Debugf("unable to query settability of %s: %v", addr, err)
		return false
	}
	return ok
}
