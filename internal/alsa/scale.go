package alsa

import (
	"math"
	"strings"

	"github.com/GregoryDosh/volumectl/internal/hal"
)

// volumeElements lists, in order of preference, the mixer elements that
// stand for the volume of each direction.
var volumeElements = map[hal.Scope][]string{
	hal.Output: {
		"Master Playback Volume",
		"PCM Playback Volume",
		"Speaker Playback Volume",
		"Headphone Playback Volume",
	},
	hal.Input: {
		"Capture Volume",
		"Mic Capture Volume",
		"Internal Mic Capture Volume",
	},
}

// switchName returns the switch element paired with a volume element,
// "Master Playback Volume" -> "Master Playback Switch".
func switchName(volume string) string {
	return strings.Replace(volume, " Volume", " Switch", 1)
}

// toScalar maps a raw element value onto [0, 1].
func toScalar(raw, min, max int) float32 {
	if max <= min {
		return 0
	}
	return float32(raw-min) / float32(max-min)
}

// toRaw maps a level in [0, 1] onto the element's raw range.
func toRaw(level float32, min, max int) int {
	if max <= min {
		return min
	}
	return min + int(math.Round(float64(level)*float64(max-min)))
}

// elementIndex maps a channel onto the value index of an element with count
// values. The master channel is only addressable on mono elements.
func elementIndex(channel uint32, count int) (int, bool) {
	if channel == hal.MasterChannel {
		return 0, count == 1
	}
	if int(channel) > count {
		return 0, false
	}
	return int(channel) - 1, true
}
