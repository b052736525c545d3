//go:build linux

package alsa

import (
	"errors"
	"fmt"

	"github.com/GregoryDosh/volumectl/internal/hal"
	alsalib "github.com/gen2brain/alsa"
	"github.com/sirupsen/logrus"
)

var (
	log               = logrus.WithField("module", "alsa")
	UnknownCardError  = errors.New("unknown sound card")
	NoSoundCardsError = errors.New("no sound cards found")
	InvalidRangeError = errors.New("element has an invalid range")
	NotBooleanError   = errors.New("element is not a switch")
)

type card struct {
	id   hal.DeviceID
	name string
}

// element describes a mixer element without holding the mixer open.
type element struct {
	name    string
	count   int
	min     int
	max     int
	boolean bool
}

// Mixer implements hal.Accessor over ALSA cards. Every property access
// opens the card's mixer for the duration of the call.
type Mixer struct {
	cards []card
}

// NewMixer enumerates the sound cards once.
func NewMixer() (*Mixer, error) {
	soundCards, err := alsalib.EnumerateCards()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate cards: %w", err)
	}
	if len(soundCards) == 0 {
		return nil, NoSoundCardsError
	}

	m := &Mixer{}
	for _, c := range soundCards {
		log.Debugf("found card %d '%s'", c.ID, c.Name)
		m.cards = append(m.cards, card{id: hal.DeviceID(c.ID), name: c.Name})
	}
	return m, nil
}

func (m *Mixer) card(id hal.DeviceID) (card, error) {
	for _, c := range m.cards {
		if c.id == id {
			return c, nil
		}
	}
	return card{}, fmt.Errorf("%w: %d", UnknownCardError, id)
}

// lookup finds the first element of candidates the card has.
func (m *Mixer) lookup(id hal.DeviceID, candidates []string) (*element, error) {
	if _, err := m.card(id); err != nil {
		return nil, err
	}
	mixer, err := alsalib.MixerOpen(uint(id))
	if err != nil {
		return nil, fmt.Errorf("failed to open mixer for card %d: %w", id, err)
	}
	defer mixer.Close()

	for _, name := range candidates {
		ctl, err := mixer.CtlByName(name)
		if err != nil {
			continue
		}
		e := &element{
			name:    name,
			count:   int(ctl.NumValues()),
			boolean: ctl.Type() == alsalib.SNDRV_CTL_ELEM_TYPE_BOOLEAN,
		}
		if !e.boolean {
			e.min, _ = ctl.RangeMin()
			e.max, _ = ctl.RangeMax()
			if e.max <= e.min {
				return nil, fmt.Errorf("%w: %s", InvalidRangeError, name)
			}
		}
		return e, nil
	}
	return nil, hal.PropertyNotPresentError
}

func (m *Mixer) volumeElement(id hal.DeviceID, scope hal.Scope) (*element, error) {
	return m.lookup(id, volumeElements[scope])
}

func (m *Mixer) switchElement(id hal.DeviceID, scope hal.Scope) (*element, error) {
	v, err := m.volumeElement(id, scope)
	if err != nil {
		return nil, err
	}
	e, err := m.lookup(id, []string{switchName(v.name)})
	if err != nil {
		return nil, err
	}
	if !e.boolean {
		return nil, fmt.Errorf("%w: %s", NotBooleanError, e.name)
	}
	return e, nil
}

func (m *Mixer) values(id hal.DeviceID, name string, index ...int) ([]int, error) {
	mixer, err := alsalib.MixerOpen(uint(id))
	if err != nil {
		return nil, fmt.Errorf("failed to open mixer: %w", err)
	}
	defer mixer.Close()

	ctl, err := mixer.CtlByName(name)
	if err != nil {
		return nil, fmt.Errorf("control '%s' not found: %w", name, err)
	}
	out := make([]int, 0, len(index))
	for _, i := range index {
		v, err := ctl.Value(uint(i))
		if err != nil {
			return nil, fmt.Errorf("failed to get %s channel %d value: %w", name, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *Mixer) setValues(id hal.DeviceID, name string, raw int, index ...int) error {
	mixer, err := alsalib.MixerOpen(uint(id))
	if err != nil {
		return fmt.Errorf("failed to open mixer: %w", err)
	}
	defer mixer.Close()

	ctl, err := mixer.CtlByName(name)
	if err != nil {
		return fmt.Errorf("control '%s' not found: %w", name, err)
	}
	for _, i := range index {
		if err := ctl.SetValue(uint(i), raw); err != nil {
			return fmt.Errorf("failed to set %s channel %d: %w", name, i, err)
		}
	}
	return nil
}

func allIndexes(count int) []int {
	index := make([]int, count)
	for i := range index {
		index[i] = i
	}
	return index
}

func (m *Mixer) Devices() ([]hal.DeviceID, error) {
	ids := make([]hal.DeviceID, 0, len(m.cards))
	for _, c := range m.cards {
		ids = append(ids, c.id)
	}
	return ids, nil
}

func (m *Mixer) DeviceName(id hal.DeviceID) (string, bool) {
	c, err := m.card(id)
	if err != nil || c.name == "" {
		return "", false
	}
	return c.name, true
}

// StreamConfiguration reports the value count of the direction's volume
// element as a single buffer.
func (m *Mixer) StreamConfiguration(id hal.DeviceID, scope hal.Scope) ([]uint32, error) {
	e, err := m.volumeElement(id, scope)
	if err != nil {
		return nil, err
	}
	return []uint32{uint32(e.count)}, nil
}

func (m *Mixer) HasProperty(addr hal.Address) bool {
	switch addr.Control {
	case hal.VolumeScalar:
		e, err := m.volumeElement(addr.Device, addr.Scope)
		if err != nil {
			return false
		}
		_, ok := elementIndex(addr.Channel, e.count)
		return ok
	case hal.Mute:
		if addr.Channel != hal.MasterChannel {
			return false
		}
		_, err := m.switchElement(addr.Device, addr.Scope)
		return err == nil
	}
	return false
}

func (m *Mixer) IsSettable(addr hal.Address) (bool, error) {
	if !m.HasProperty(addr) {
		return false, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	return true, nil
}

func (m *Mixer) ReadFloat(addr hal.Address) (float32, error) {
	if addr.Control != hal.VolumeScalar {
		return 0, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	e, err := m.volumeElement(addr.Device, addr.Scope)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", addr, err)
	}
	i, ok := elementIndex(addr.Channel, e.count)
	if !ok {
		return 0, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	v, err := m.values(addr.Device, e.name, i)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", addr, err)
	}
	return toScalar(v[0], e.min, e.max), nil
}

func (m *Mixer) WriteFloat(addr hal.Address, level float32) error {
	if addr.Control != hal.VolumeScalar {
		return fmt.Errorf("%s: %w", addr, hal.PropertyNotSettableError)
	}
	e, err := m.volumeElement(addr.Device, addr.Scope)
	if err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	i, ok := elementIndex(addr.Channel, e.count)
	if !ok {
		return fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	if err := m.setValues(addr.Device, e.name, toRaw(level, e.min, e.max), i); err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}

// ReadBool reports muted only when every channel of the switch is off.
func (m *Mixer) ReadBool(addr hal.Address) (bool, error) {
	if addr.Control != hal.Mute || addr.Channel != hal.MasterChannel {
		return false, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	e, err := m.switchElement(addr.Device, addr.Scope)
	if err != nil {
		return false, fmt.Errorf("%s: %w", addr, err)
	}
	values, err := m.values(addr.Device, e.name, allIndexes(e.count)...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", addr, err)
	}
	for _, v := range values {
		if v != 0 {
			return false, nil
		}
	}
	return true, nil
}

// WriteBool switches every channel of the mute switch.
func (m *Mixer) WriteBool(addr hal.Address, muted bool) error {
	if addr.Control != hal.Mute || addr.Channel != hal.MasterChannel {
		return fmt.Errorf("%s: %w", addr, hal.PropertyNotSettableError)
	}
	e, err := m.switchElement(addr.Device, addr.Scope)
	if err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	val := 1
	if muted {
		val = 0
	}
	if err := m.setValues(addr.Device, e.name, val, allIndexes(e.count)...); err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}
