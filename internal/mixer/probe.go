package mixer

import "github.com/GregoryDosh/volumectl/internal/hal"

// Capabilities says which directions of a device carry channels.
type Capabilities struct {
	SupportsInput  bool
	SupportsOutput bool
}

func (c Capabilities) Supports(scope hal.Scope) bool {
	switch scope {
	case hal.Input:
		return c.SupportsInput
	case hal.Output:
		return c.SupportsOutput
	}
	return false
}

// Probe counts the channels of each direction of a device. A direction the
// device cannot report on has no channels.
func (m *Mixer) Probe(id hal.DeviceID) Capabilities {
	c := Capabilities{
		SupportsInput:  hal.ChannelCount(m.hal, id, hal.Input) > 0,
		SupportsOutput: hal.ChannelCount(m.hal, id, hal.Output) > 0,
	}
	log.Tracef("device %d capabilities %+v", id, c)
	return c
}
