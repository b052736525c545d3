package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var InvalidLevelError = errors.New("level must be between 0 and 1 or 0% and 100%")

// parseLevel accepts a fraction such as 0.4 or a percentage such as 40%.
func parseLevel(s string) (float32, error) {
	s = strings.TrimSpace(s)
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		scale = 100
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", InvalidLevelError, s)
	}
	v /= scale
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %q", InvalidLevelError, s)
	}
	return float32(v), nil
}
