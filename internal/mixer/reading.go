package mixer

import (
	"strconv"
	"strings"
)

// FailedChannel marks a channel whose volume could not be read. It keeps the
// channel's position in a Reading.
const FailedChannel float32 = -1

// Reading is a volume reading ordered by channel, channel 1 first. A reading
// taken from a master control has a single value.
type Reading []float32

// Valid reports whether at least one value is a usable scalar.
func (r Reading) Valid() bool {
	for _, v := range r {
		if v >= 0 && v <= 1 {
			return true
		}
	}
	return false
}

// Distinct drops repeated values, keeping the first occurrence of each.
// Balanced channels collapse to a single value.
func (r Reading) Distinct() Reading {
	out := make(Reading, 0, len(r))
	for _, v := range r {
		seen := false
		for _, o := range out {
			if o == v {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out
}

func (r Reading) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.FormatFloat(float64(v), 'f', 2, 32)
	}
	return strings.Join(parts, " ")
}
