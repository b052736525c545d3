// Package coreaudio exposes Windows Core Audio endpoints as a hal.Accessor.
// Active render endpoints are enumerated first, then active capture
// endpoints; each gets an identifier from its position in that list.
package coreaudio
