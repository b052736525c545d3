// Package fixture is an audio backend made of simulated devices described in
// YAML. It lets volumectl run without touching the host mixer and records
// every write it receives.
package fixture

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	log                  = logrus.WithField("module", "fixture")
	UnknownDeviceError   = errors.New("unknown fixture device")
	UnknownControlError  = errors.New("unknown fixture control")
	SimulatedFailure     = errors.New("simulated hardware failure")
	DuplicateDeviceError = errors.New("duplicate fixture device id")
)

type File struct {
	Devices []Device `yaml:"devices"`
}

type Device struct {
	ID     hal.DeviceID `yaml:"id"`
	Name   string       `yaml:"name,omitempty"`
	Input  *Side        `yaml:"input,omitempty"`
	Output *Side        `yaml:"output,omitempty"`
	Global *Side        `yaml:"global,omitempty"`
}

// Side holds the stream buffers and controls of one scope of a device.
type Side struct {
	Streams      []uint32  `yaml:"streams,omitempty"`
	StreamsError bool      `yaml:"streams_error,omitempty"`
	Controls     []Control `yaml:"controls,omitempty"`
}

type Control struct {
	Kind       string  `yaml:"control"`
	Channel    uint32  `yaml:"channel,omitempty"`
	Value      float32 `yaml:"value,omitempty"`
	Muted      bool    `yaml:"muted,omitempty"`
	Settable   bool    `yaml:"settable"`
	ReadError  bool    `yaml:"read_error,omitempty"`
	WriteError bool    `yaml:"write_error,omitempty"`

	control hal.Control
}

func (c *Control) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Controls are settable unless the fixture says otherwise.
	type rawControl Control
	raw := rawControl{
		Settable: true,
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*c = Control(raw)
	return nil
}

// Write is one successful write received by the Accessor. Boolean writes are
// recorded as 1 or 0.
type Write struct {
	Address hal.Address
	Value   float32
}

// Accessor implements hal.Accessor over a set of simulated devices.
type Accessor struct {
	devices []*Device
	writes  []Write
}

// Load reads a fixture file from disk.
func Load(filename string) (*Accessor, error) {
	log.Debugf("reading fixture %s", filename)
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse builds an Accessor from YAML.
func Parse(b []byte) (*Accessor, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("unable to parse fixture: %w", err)
	}
	return New(f.Devices...)
}

// New builds an Accessor from devices, in the order given.
func New(devices ...Device) (*Accessor, error) {
	a := &Accessor{}
	seen := map[hal.DeviceID]bool{}
	for i := range devices {
		d := devices[i]
		if seen[d.ID] {
			return nil, fmt.Errorf("%w: %d", DuplicateDeviceError, d.ID)
		}
		seen[d.ID] = true
		for _, s := range []*Side{d.Input, d.Output, d.Global} {
			if s == nil {
				continue
			}
			for j := range s.Controls {
				k, err := parseKind(s.Controls[j].Kind)
				if err != nil {
					return nil, fmt.Errorf("device %d: %w", d.ID, err)
				}
				s.Controls[j].control = k
			}
		}
		a.devices = append(a.devices, &d)
	}
	return a, nil
}

func parseKind(s string) (hal.Control, error) {
	switch strings.ToLower(s) {
	case "volume", "scalar", "volm":
		return hal.VolumeScalar, nil
	case "decibel", "db", "vold":
		return hal.VolumeDecibel, nil
	case "gain":
		return hal.Gain, nil
	case "mute":
		return hal.Mute, nil
	}
	return 0, fmt.Errorf("%w: %q", UnknownControlError, s)
}

// Writes returns every successful write in the order it happened.
func (a *Accessor) Writes() []Write {
	return append([]Write(nil), a.writes...)
}

func (a *Accessor) device(id hal.DeviceID) *Device {
	for _, d := range a.devices {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (d *Device) side(scope hal.Scope) *Side {
	switch scope {
	case hal.Input:
		return d.Input
	case hal.Output:
		return d.Output
	case hal.Global:
		return d.Global
	}
	return nil
}

func (a *Accessor) lookup(addr hal.Address) *Control {
	d := a.device(addr.Device)
	if d == nil {
		return nil
	}
	s := d.side(addr.Scope)
	if s == nil {
		return nil
	}
	for i := range s.Controls {
		c := &s.Controls[i]
		if c.control == addr.Control && c.Channel == addr.Channel {
			return c
		}
	}
	return nil
}

func (a *Accessor) Devices() ([]hal.DeviceID, error) {
	ids := make([]hal.DeviceID, 0, len(a.devices))
	for _, d := range a.devices {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (a *Accessor) DeviceName(id hal.DeviceID) (string, bool) {
	d := a.device(id)
	if d == nil || d.Name == "" {
		return "", false
	}
	return d.Name, true
}

func (a *Accessor) StreamConfiguration(id hal.DeviceID, scope hal.Scope) ([]uint32, error) {
	d := a.device(id)
	if d == nil {
		return nil, fmt.Errorf("%w: %d", UnknownDeviceError, id)
	}
	s := d.side(scope)
	if s == nil {
		return nil, hal.PropertyNotPresentError
	}
	if s.StreamsError {
		return nil, fmt.Errorf("device %d %s stream configuration: %w", id, scope, SimulatedFailure)
	}
	return append([]uint32(nil), s.Streams...), nil
}

func (a *Accessor) HasProperty(addr hal.Address) bool {
	return a.lookup(addr) != nil
}

func (a *Accessor) IsSettable(addr hal.Address) (bool, error) {
	c := a.lookup(addr)
	if c == nil {
		return false, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	return c.Settable, nil
}

func (a *Accessor) ReadFloat(addr hal.Address) (float32, error) {
	c := a.lookup(addr)
	if c == nil {
		return 0, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	if c.ReadError {
		return 0, fmt.Errorf("%s: %w", addr, SimulatedFailure)
	}
	return c.Value, nil
}

func (a *Accessor) ReadBool(addr hal.Address) (bool, error) {
	c := a.lookup(addr)
	if c == nil {
		return false, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	if c.ReadError {
		return false, fmt.Errorf("%s: %w", addr, SimulatedFailure)
	}
	return c.Muted, nil
}

func (a *Accessor) WriteFloat(addr hal.Address, v float32) error {
	c, err := a.writable(addr)
	if err != nil {
		return err
	}
	c.Value = v
	a.writes = append(a.writes, Write{Address: addr, Value: v})
	return nil
}

func (a *Accessor) WriteBool(addr hal.Address, v bool) error {
	c, err := a.writable(addr)
	if err != nil {
		return err
	}
	c.Muted = v
	w := Write{Address: addr}
	if v {
		w.Value = 1
	}
	a.writes = append(a.writes, w)
	return nil
}

func (a *Accessor) writable(addr hal.Address) (*Control, error) {
	c := a.lookup(addr)
	if c == nil {
		return nil, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	if !c.Settable {
		return nil, fmt.Errorf("%s: %w", addr, hal.PropertyNotSettableError)
	}
	if c.WriteError {
		return nil, fmt.Errorf("%s: %w", addr, SimulatedFailure)
	}
	return c, nil
}
