package mixer

import (
	"fmt"
	"strings"

	"github.com/GregoryDosh/volumectl/internal/hal"
)

// MuteAction is what a caller asks of a mute control. The zero value toggles.
type MuteAction int

const (
	MuteToggle MuteAction = iota
	MuteOn
	MuteOff
)

func (a MuteAction) String() string {
	switch a {
	case MuteOn:
		return "on"
	case MuteOff:
		return "off"
	}
	return "toggle"
}

// ParseMuteAction accepts on, off, toggle or an empty string.
func ParseMuteAction(s string) (MuteAction, error) {
	switch strings.ToLower(s) {
	case "", "toggle":
		return MuteToggle, nil
	case "on":
		return MuteOn, nil
	case "off":
		return MuteOff, nil
	}
	return MuteToggle, fmt.Errorf("%w: %q", InvalidMuteActionError, s)
}

// target returns the mute state action leads to from current.
func (a MuteAction) target(current bool) bool {
	switch a {
	case MuteOn:
		return true
	case MuteOff:
		return false
	}
	return !current
}

// ResolveMute reads the mute state of scope and applies action, returning the
// resulting state. Nothing is written when the state would not change.
func (m *Mixer) ResolveMute(id hal.DeviceID, scope hal.Scope, action MuteAction) (bool, error) {
	addr := hal.Address{Device: id, Control: hal.Mute, Scope: scope, Channel: hal.MasterChannel}
	if !m.hal.HasProperty(addr) {
		return false, fmt.Errorf("%w: device %d %s", MuteNotSupportedError, id, scope)
	}

	current, err := m.hal.ReadBool(addr)
	if err != nil {
		return false, ioError(err)
	}

	target := action.target(current)
	if target == current {
		log.Debugf("%s already %v", addr, current)
		return current, nil
	}

	settable, err := m.hal.IsSettable(addr)
	if err != nil {
		return false, ioError(err)
	}
	if !settable {
		return false, fmt.Errorf("%w: device %d %s", MuteNotSettableError, id, scope)
	}
	if err := m.hal.WriteBool(addr, target); err != nil {
		return false, fmt.Errorf("%w: %w", MuteWriteFailedError, err)
	}
	log.Debugf("wrote %s = %v", addr, target)
	return target, nil
}
