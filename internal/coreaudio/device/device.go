//go:build windows

package device

import (
	"errors"
	"fmt"

	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/moutend/go-wca/pkg/wca"
	"github.com/sirupsen/logrus"
)

var (
	log                        = logrus.WithField("module", "coreaudio.device")
	UninitializedDeviceError   = errors.New("IMMDevice is nil or uninitialized")
	MissingAudioEndpointVolume = errors.New("device has no volume endpoint")
	InvalidChannelError        = errors.New("channel out of range")
)

type Device struct {
	mmd  *wca.IMMDevice
	aev  *wca.IAudioEndpointVolume
	flow uint32
}

// Cleanup will release and remove any pointers or leftover devices from the creation process.
func (d *Device) Cleanup() error {
	if d.aev != nil {
		d.aev.Release()
		d.aev = nil
	}
	if d.mmd != nil {
		d.mmd.Release()
		d.mmd = nil
	}
	return nil
}

// Scope is hal.Output for render endpoints and hal.Input for capture endpoints.
func (d *Device) Scope() hal.Scope {
	if d.flow == wca.ECapture {
		return hal.Input
	}
	return hal.Output
}

// HasEndpointVolume reports whether the endpoint exposes volume controls at all.
func (d *Device) HasEndpointVolume() bool {
	return d.aev != nil
}

// DeviceName returns the name of the audio device if it exists.
func (d *Device) DeviceName() (string, error) {
	if d.mmd == nil {
		return "", UninitializedDeviceError
	}
	var ps *wca.IPropertyStore
	if err := d.mmd.OpenPropertyStore(wca.STGM_READ, &ps); err != nil {
		return "", err
	}
	defer ps.Release()

	var pv wca.PROPVARIANT
	if err := ps.GetValue(&wca.PKEY_Device_FriendlyName, &pv); err != nil {
		return "", err
	}
	return pv.String(), nil
}

// ChannelCount is the number of channels in the endpoint's stream format.
func (d *Device) ChannelCount() (uint32, error) {
	if d.aev == nil {
		return 0, MissingAudioEndpointVolume
	}
	var n uint32
	if err := d.aev.GetChannelCount(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// GetVolumeLevel will get the volume of the device, if it exists, as a float on the scale of 0-1.
func (d *Device) GetVolumeLevel() (float32, error) {
	if d.aev == nil {
		return 0, MissingAudioEndpointVolume
	}
	var v float32
	if err := d.aev.GetMasterVolumeLevelScalar(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// SetVolumeLevel takes a float between 0-1 and it will set the volume of the device to that value.
func (d *Device) SetVolumeLevel(v float32) error {
	if d.aev == nil {
		return MissingAudioEndpointVolume
	}
	if (v < 0) || (1 < v) {
		return fmt.Errorf("invalid volume level %f", v)
	}
	return d.aev.SetMasterVolumeLevelScalar(v, nil)
}

// GetDecibelLevel returns the master volume in decibels.
func (d *Device) GetDecibelLevel() (float32, error) {
	if d.aev == nil {
		return 0, MissingAudioEndpointVolume
	}
	var v float32
	if err := d.aev.GetMasterVolumeLevel(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// GetChannelVolumeLevel reads one channel, numbered from 1, on the scale of 0-1.
func (d *Device) GetChannelVolumeLevel(channel uint32) (float32, error) {
	if err := d.checkChannel(channel); err != nil {
		return 0, err
	}
	var v float32
	if err := d.aev.GetChannelVolumeLevelScalar(channel-1, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// SetChannelVolumeLevel writes one channel, numbered from 1.
func (d *Device) SetChannelVolumeLevel(channel uint32, v float32) error {
	if err := d.checkChannel(channel); err != nil {
		return err
	}
	if (v < 0) || (1 < v) {
		return fmt.Errorf("invalid volume level %f", v)
	}
	return d.aev.SetChannelVolumeLevelScalar(channel-1, v, nil)
}

func (d *Device) checkChannel(channel uint32) error {
	n, err := d.ChannelCount()
	if err != nil {
		return err
	}
	if channel == 0 || channel > n {
		return fmt.Errorf("%w: %d of %d", InvalidChannelError, channel, n)
	}
	return nil
}

func (d *Device) GetMute() (bool, error) {
	if d.aev == nil {
		return false, MissingAudioEndpointVolume
	}
	var muted bool
	if err := d.aev.GetMute(&muted); err != nil {
		return false, err
	}
	return muted, nil
}

func (d *Device) SetMute(muted bool) error {
	if d.aev == nil {
		return MissingAudioEndpointVolume
	}
	return d.aev.SetMute(muted, nil)
}

// New takes in a *wca.IMMDevice and the data flow it was enumerated with and wraps it as a *Device.
// Endpoints without an IAudioEndpointVolume are still returned so they can be listed.
func New(mmd *wca.IMMDevice, flow uint32) (*Device, error) {
	if mmd == nil {
		return nil, UninitializedDeviceError
	}

	d := &Device{
		mmd:  mmd,
		flow: flow,
	}

	if err := d.mmd.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &d.aev); err != nil {
		log.Debugf("%s: %v", MissingAudioEndpointVolume, err)
		d.aev = nil
	}

	return d, nil
}
