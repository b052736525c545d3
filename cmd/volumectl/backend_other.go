//go:build !windows && !linux && !(darwin && cgo)

package main

import "github.com/GregoryDosh/volumectl/internal/hal"

func platformBackend() (hal.Accessor, func(), error) {
	return nil, nil, NoPlatformBackendError
}
