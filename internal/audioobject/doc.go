// Package audioobject exposes macOS CoreAudio devices as a hal.Accessor using
// the AudioObject property API. Selectors, scopes and channel numbers from
// package hal are passed to CoreAudio unchanged; element 0 is the main
// element.
package audioobject
