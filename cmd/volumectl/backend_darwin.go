//go:build darwin && cgo

package main

import (
	"github.com/GregoryDosh/volumectl/internal/audioobject"
	"github.com/GregoryDosh/volumectl/internal/hal"
)

func platformBackend() (hal.Accessor, func(), error) {
	return audioobject.New(), func() {}, nil
}
