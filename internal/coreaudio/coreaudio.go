//go:build windows

package coreaudio

import (
	"errors"
	"fmt"

	"github.com/GregoryDosh/volumectl/internal/coreaudio/device"
	"github.com/GregoryDosh/volumectl/internal/hal"
	ole "github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
	"github.com/sirupsen/logrus"
)

var (
	CoreAudioAlreadyInitialized = errors.New("CoInitializeEX returned S_FALSE -> Already initialized on this thread")
	UnknownDeviceError          = errors.New("unknown endpoint")
	log                         = logrus.WithField("module", "coreaudio")
)

type CoreAudio struct {
	deviceEnumerator *wca.IMMDeviceEnumerator
	devices          []*device.Device
}

// New will create a new CoreAudio accessor and enumerate the active endpoints once.
func New() (*CoreAudio, error) {
	// CoInitializeEx must be called at least once, and is usually called only once, for each thread that uses the COM library.
	// https://docs.microsoft.com/en-us/windows/win32/api/combaseapi/nf-combaseapi-coinitializeex
	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		if oleErr, ok := err.(*ole.OleError); ok && oleErr.Code() == 1 {
			return nil, CoreAudioAlreadyInitialized
		}
		return nil, err
	}

	ca := &CoreAudio{}

	// Enables audio clients to discover audio endpoint devices.
	// https://docs.microsoft.com/en-us/windows/win32/coreaudio/mmdevice-api
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &ca.deviceEnumerator); err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("CoCreateInstance failed to create MMDeviceEnumerator %w", err)
	}

	for _, flow := range []uint32{wca.ERender, wca.ECapture} {
		if err := ca.enumerate(flow); err != nil {
			ca.Cleanup()
			return nil, err
		}
	}

	return ca, nil
}

// enumerate appends every active endpoint of one data flow.
func (ca *CoreAudio) enumerate(flow uint32) error {
	log.Trace("Enter enumerate")
	defer log.Trace("Exit enumerate")

	var deviceCollection *wca.IMMDeviceCollection
	if err := ca.deviceEnumerator.EnumAudioEndpoints(flow, wca.DEVICE_STATE_ACTIVE, &deviceCollection); err != nil {
		return fmt.Errorf("failed to enumerate endpoints: %w", err)
	}
	defer deviceCollection.Release()

	var deviceCount uint32
	if err := deviceCollection.GetCount(&deviceCount); err != nil {
		return fmt.Errorf("failed to count endpoints: %w", err)
	}

	for i := uint32(0); i < deviceCount; i++ {
		var mmd *wca.IMMDevice
		if err := deviceCollection.Item(i, &mmd); err != nil {
			log.Error(err)
			continue
		}
		d, err := device.New(mmd, flow)
		if err != nil {
			log.Error(err)
			continue
		}
		if dn, err := d.DeviceName(); err == nil {
			log.Debugf("found %s endpoint named '%s'", d.Scope(), dn)
		}
		ca.devices = append(ca.devices, d)
	}
	return nil
}

// Cleanup releases every endpoint and the COM library.
func (ca *CoreAudio) Cleanup() error {
	for _, d := range ca.devices {
		if err := d.Cleanup(); err != nil {
			log.Error(err)
		}
	}
	ca.devices = nil
	if ca.deviceEnumerator != nil {
		ca.deviceEnumerator.Release()
		ca.deviceEnumerator = nil
	}
	ole.CoUninitialize()
	return nil
}

func (ca *CoreAudio) device(id hal.DeviceID) (*device.Device, error) {
	if id == 0 || int(id) > len(ca.devices) {
		return nil, fmt.Errorf("%w: %d", UnknownDeviceError, id)
	}
	return ca.devices[id-1], nil
}

// endpoint returns the device behind addr when it has volume controls for addr's scope.
func (ca *CoreAudio) endpoint(addr hal.Address) (*device.Device, error) {
	d, err := ca.device(addr.Device)
	if err != nil {
		return nil, err
	}
	if d.Scope() != addr.Scope || !d.HasEndpointVolume() {
		return nil, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	return d, nil
}

func (ca *CoreAudio) Devices() ([]hal.DeviceID, error) {
	ids := make([]hal.DeviceID, len(ca.devices))
	for i := range ca.devices {
		ids[i] = hal.DeviceID(i + 1)
	}
	return ids, nil
}

func (ca *CoreAudio) DeviceName(id hal.DeviceID) (string, bool) {
	d, err := ca.device(id)
	if err != nil {
		return "", false
	}
	name, err := d.DeviceName()
	if err != nil {
		log.Debug(err)
		return "", false
	}
	return name, true
}

func (ca *CoreAudio) StreamConfiguration(id hal.DeviceID, scope hal.Scope) ([]uint32, error) {
	d, err := ca.endpoint(hal.Address{Device: id, Control: hal.StreamConfiguration, Scope: scope})
	if err != nil {
		return nil, err
	}
	n, err := d.ChannelCount()
	if err != nil {
		return nil, err
	}
	return []uint32{n}, nil
}

func (ca *CoreAudio) HasProperty(addr hal.Address) bool {
	d, err := ca.endpoint(addr)
	if err != nil {
		return false
	}
	switch addr.Control {
	case hal.VolumeScalar:
		if addr.Channel == hal.MasterChannel {
			return true
		}
		n, err := d.ChannelCount()
		return err == nil && addr.Channel <= n
	case hal.VolumeDecibel, hal.Mute:
		return addr.Channel == hal.MasterChannel
	}
	return false
}

// IsSettable is true for scalar volume and mute. Decibel levels are only
// exposed for reading.
func (ca *CoreAudio) IsSettable(addr hal.Address) (bool, error) {
	if !ca.HasProperty(addr) {
		return false, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	return addr.Control != hal.VolumeDecibel, nil
}

func (ca *CoreAudio) ReadFloat(addr hal.Address) (float32, error) {
	if !ca.HasProperty(addr) {
		return 0, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	d, _ := ca.endpoint(addr)

	var v float32
	var err error
	switch {
	case addr.Control == hal.VolumeDecibel:
		v, err = d.GetDecibelLevel()
	case addr.Control == hal.VolumeScalar && addr.Channel == hal.MasterChannel:
		v, err = d.GetVolumeLevel()
	case addr.Control == hal.VolumeScalar:
		v, err = d.GetChannelVolumeLevel(addr.Channel)
	default:
		return 0, fmt.Errorf("%s is not a float property", addr)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", addr, err)
	}
	return v, nil
}

func (ca *CoreAudio) WriteFloat(addr hal.Address, v float32) error {
	if !ca.HasProperty(addr) {
		return fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	d, _ := ca.endpoint(addr)

	var err error
	switch {
	case addr.Control == hal.VolumeScalar && addr.Channel == hal.MasterChannel:
		err = d.SetVolumeLevel(v)
	case addr.Control == hal.VolumeScalar:
		err = d.SetChannelVolumeLevel(addr.Channel, v)
	default:
		return fmt.Errorf("%s: %w", addr, hal.PropertyNotSettableError)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}

func (ca *CoreAudio) ReadBool(addr hal.Address) (bool, error) {
	if addr.Control != hal.Mute || !ca.HasProperty(addr) {
		return false, fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	d, _ := ca.endpoint(addr)
	muted, err := d.GetMute()
	if err != nil {
		return false, fmt.Errorf("%s: %w", addr, err)
	}
	return muted, nil
}

func (ca *CoreAudio) WriteBool(addr hal.Address, v bool) error {
	if addr.Control != hal.Mute || !ca.HasProperty(addr) {
		return fmt.Errorf("%s: %w", addr, hal.PropertyNotPresentError)
	}
	d, _ := ca.endpoint(addr)
	if err := d.SetMute(v); err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}
