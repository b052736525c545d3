package mixer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GregoryDosh/volumectl/internal/hal"
)

// DeviceSummary is one enumerated device. Name is empty when the backend
// could not name the device.
type DeviceSummary struct {
	ID   hal.DeviceID
	Name string
	Capabilities
}

// Locate maps a token to a device. A numeric token must be the identifier of
// a named device; any other token selects the first device, in enumeration
// order, whose name contains it regardless of case.
func Locate(token string, devices []DeviceSummary) (hal.DeviceID, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty device token", DeviceNotFoundError)
	}

	if n, err := strconv.ParseUint(token, 10, 32); err == nil {
		for _, d := range devices {
			if d.ID == hal.DeviceID(n) && d.Name != "" {
				return d.ID, nil
			}
		}
		return 0, fmt.Errorf("%w: %s", DeviceNotFoundError, token)
	}

	needle := strings.ToLower(token)
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			return d.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", DeviceNotFoundError, token)
}
