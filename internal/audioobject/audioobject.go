//go:build darwin && cgo

package audioobject

/*
#cgo LDFLAGS: -framework CoreAudio -framework CoreFoundation
#include <stdlib.h>
#include <CoreAudio/CoreAudio.h>
#include <CoreFoundation/CoreFoundation.h>

static AudioObjectPropertyAddress property_address(UInt32 selector, UInt32 scope, UInt32 element) {
    AudioObjectPropertyAddress a;
    a.mSelector = selector;
    a.mScope = scope;
    a.mElement = element;
    return a;
}

static int has_property(AudioObjectID id, UInt32 selector, UInt32 scope, UInt32 element) {
    AudioObjectPropertyAddress a = property_address(selector, scope, element);
    return AudioObjectHasProperty(id, &a) ? 1 : 0;
}

static OSStatus is_settable(AudioObjectID id, UInt32 selector, UInt32 scope, UInt32 element, int *settable) {
    AudioObjectPropertyAddress a = property_address(selector, scope, element);
    Boolean s = false;
    OSStatus status = AudioObjectIsPropertySettable(id, &a, &s);
    *settable = s ? 1 : 0;
    return status;
}

static OSStatus get_float(AudioObjectID id, UInt32 selector, UInt32 scope, UInt32 element, Float32 *value) {
    AudioObjectPropertyAddress a = property_address(selector, scope, element);
    UInt32 size = sizeof(Float32);
    return AudioObjectGetPropertyData(id, &a, 0, NULL, &size, value);
}

static OSStatus set_float(AudioObjectID id, UInt32 selector, UInt32 scope, UInt32 element, Float32 value) {
    AudioObjectPropertyAddress a = property_address(selector, scope, element);
    return AudioObjectSetPropertyData(id, &a, 0, NULL, sizeof(Float32), &value);
}

static OSStatus get_uint32(AudioObjectID id, UInt32 selector, UInt32 scope, UInt32 element, UInt32 *value) {
    AudioObjectPropertyAddress a = property_address(selector, scope, element);
    UInt32 size = sizeof(UInt32);
    return AudioObjectGetPropertyData(id, &a, 0, NULL, &size, value);
}

static OSStatus set_uint32(AudioObjectID id, UInt32 selector, UInt32 scope, UInt32 element, UInt32 value) {
    AudioObjectPropertyAddress a = property_address(selector, scope, element);
    return AudioObjectSetPropertyData(id, &a, 0, NULL, sizeof(UInt32), &value);
}

// device_ids fills ids with up to max device identifiers and stores the
// total number of devices in count.
static OSStatus device_ids(AudioObjectID *ids, UInt32 max, UInt32 *count) {
    AudioObjectPropertyAddress a = property_address(kAudioHardwarePropertyDevices, kAudioObjectPropertyScopeGlobal, 0);
    UInt32 size = 0;
    OSStatus status = AudioObjectGetPropertyDataSize(kAudioObjectSystemObject, &a, 0, NULL, &size);
    if (status != noErr) return status;
    *count = size / sizeof(AudioObjectID);
    if (ids == NULL || max == 0) return noErr;
    if (*count < max) max = *count;
    size = max * sizeof(AudioObjectID);
    return AudioObjectGetPropertyData(kAudioObjectSystemObject, &a, 0, NULL, &size, ids);
}

// stream_channels fills channels with the channel count of up to max
// buffers of the stream configuration and stores the buffer count in count.
static OSStatus stream_channels(AudioObjectID id, UInt32 scope, UInt32 *channels, UInt32 max, UInt32 *count) {
    AudioObjectPropertyAddress a = property_address(kAudioDevicePropertyStreamConfiguration, scope, 0);
    UInt32 size = 0;
    *count = 0;
    OSStatus status = AudioObjectGetPropertyDataSize(id, &a, 0, NULL, &size);
    if (status != noErr) return status;
    if (size == 0) return noErr;
    AudioBufferList *list = (AudioBufferList *)malloc(size);
    if (list == NULL) return kAudioHardwareUnspecifiedError;
    status = AudioObjectGetPropertyData(id, &a, 0, NULL, &size, list);
    if (status == noErr) {
        *count = list->mNumberBuffers;
        UInt32 i;
        for (i = 0; i < list->mNumberBuffers && i < max; i++) {
            channels[i] = list->mBuffers[i].mNumberChannels;
        }
    }
    free(list);
    return status;
}

// device_name returns a malloc'd UTF-8 copy of the device name or NULL.
static char *device_name(AudioObjectID id) {
    AudioObjectPropertyAddress a = property_address(kAudioObjectPropertyName, kAudioObjectPropertyScopeGlobal, 0);
    CFStringRef name = NULL;
    UInt32 size = sizeof(CFStringRef);
    if (AudioObjectGetPropertyData(id, &a, 0, NULL, &size, &name) != noErr || name == NULL) return NULL;
    CFIndex length = CFStringGetMaximumSizeForEncoding(CFStringGetLength(name), kCFStringEncodingUTF8) + 1;
    char *buf = (char *)malloc(length);
    if (buf != NULL && !CFStringGetCString(name, buf, length, kCFStringEncodingUTF8)) {
        free(buf);
        buf = NULL;
    }
    CFRelease(name);
    return buf;
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/GregoryDosh/volumectl/internal/hal"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "audioobject")

// maxBuffers bounds the stream configuration read for one scope.
const maxBuffers = 64

// OSStatusError is a non-zero status returned by CoreAudio.
type OSStatusError int32

func (e OSStatusError) Error() string {
	return fmt.Sprintf("OSStatus %d (%s)", int32(e), fourCC(uint32(e)))
}

func status(s C.OSStatus) error {
	if s == 0 {
		return nil
	}
	return OSStatusError(s)
}

func fourCC(v uint32) string {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < ' ' || c > '~' {
			return "?"
		}
	}
	return string(b)
}

// HAL implements hal.Accessor against the system audio object.
type HAL struct{}

func New() *HAL {
	return &HAL{}
}

func (h *HAL) Devices() ([]hal.DeviceID, error) {
	var count C.UInt32
	if err := status(C.device_ids(nil, 0, &count)); err != nil {
		return nil, fmt.Errorf("failed to count devices: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]C.AudioObjectID, int(count))
	if err := status(C.device_ids(&ids[0], count, &count)); err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	if int(count) < len(ids) {
		ids = ids[:int(count)]
	}

	out := make([]hal.DeviceID, len(ids))
	for i, id := range ids {
		out[i] = hal.DeviceID(id)
	}
	log.Debugf("%d devices", len(out))
	return out, nil
}

func (h *HAL) DeviceName(id hal.DeviceID) (string, bool) {
	cName := C.device_name(C.AudioObjectID(id))
	if cName == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(cName))
	return C.GoString(cName), true
}

func (h *HAL) StreamConfiguration(id hal.DeviceID, scope hal.Scope) ([]uint32, error) {
	var channels [maxBuffers]C.UInt32
	var count C.UInt32
	if err := status(C.stream_channels(C.AudioObjectID(id), C.UInt32(scope), &channels[0], maxBuffers, &count)); err != nil {
		return nil, fmt.Errorf("device %d %s stream configuration: %w", id, scope, err)
	}
	n := int(count)
	if n > maxBuffers {
		log.Warnf("device %d reports %d %s buffers, using the first %d", id, n, scope, maxBuffers)
		n = maxBuffers
	}
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = uint32(channels[i])
	}
	return out, nil
}

func split(addr hal.Address) (C.AudioObjectID, C.UInt32, C.UInt32, C.UInt32) {
	return C.AudioObjectID(addr.Device), C.UInt32(addr.Control), C.UInt32(addr.Scope), C.UInt32(addr.Channel)
}

func (h *HAL) HasProperty(addr hal.Address) bool {
	id, sel, scope, elem := split(addr)
	return C.has_property(id, sel, scope, elem) != 0
}

func (h *HAL) IsSettable(addr hal.Address) (bool, error) {
	id, sel, scope, elem := split(addr)
	var settable C.int
	if err := status(C.is_settable(id, sel, scope, elem, &settable)); err != nil {
		return false, fmt.Errorf("%s: %w", addr, err)
	}
	return settable != 0, nil
}

func (h *HAL) ReadFloat(addr hal.Address) (float32, error) {
	id, sel, scope, elem := split(addr)
	var v C.Float32
	if err := status(C.get_float(id, sel, scope, elem, &v)); err != nil {
		return 0, fmt.Errorf("%s: %w", addr, err)
	}
	return float32(v), nil
}

func (h *HAL) WriteFloat(addr hal.Address, v float32) error {
	id, sel, scope, elem := split(addr)
	if err := status(C.set_float(id, sel, scope, elem, C.Float32(v))); err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}

func (h *HAL) ReadBool(addr hal.Address) (bool, error) {
	id, sel, scope, elem := split(addr)
	var v C.UInt32
	if err := status(C.get_uint32(id, sel, scope, elem, &v)); err != nil {
		return false, fmt.Errorf("%s: %w", addr, err)
	}
	return v != 0, nil
}

func (h *HAL) WriteBool(addr hal.Address, v bool) error {
	id, sel, scope, elem := split(addr)
	var raw C.UInt32
	if v {
		raw = 1
	}
	if err := status(C.set_uint32(id, sel, scope, elem, raw)); err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}
