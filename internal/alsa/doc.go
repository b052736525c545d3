// Package alsa exposes ALSA sound cards as a hal.Accessor. Each card is a
// device; the first volume element found for a direction carries its
// channels, and the element's matching switch is its mute control.
package alsa
