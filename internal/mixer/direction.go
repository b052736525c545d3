package mixer

import (
	"fmt"
	"strings"

	"github.com/GregoryDosh/volumectl/internal/hal"
)

// ParseDirection accepts "input" or "output" in any case.
func ParseDirection(s string) (hal.Scope, error) {
	switch {
	case strings.EqualFold(s, "input"):
		return hal.Input, nil
	case strings.EqualFold(s, "output"):
		return hal.Output, nil
	}
	return 0, fmt.Errorf("%w: %q", InvalidDirectionArgumentError, s)
}

// ResolveDirection picks the scope an operation targets. An empty explicit
// direction prefers output, even on devices that also have input.
func ResolveDirection(explicit string, caps Capabilities) (hal.Scope, error) {
	if explicit != "" {
		scope, err := ParseDirection(explicit)
		if err != nil {
			return 0, err
		}
		if !caps.Supports(scope) {
			return 0, &DirectionError{Direction: scope}
		}
		return scope, nil
	}

	if caps.SupportsOutput {
		return hal.Output, nil
	}
	if caps.SupportsInput {
		return hal.Input, nil
	}
	return 0, NoUsableDirectionError
}
