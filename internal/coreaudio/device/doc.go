// Package device wraps a single Windows audio endpoint and its
// IAudioEndpointVolume interface.
package device
