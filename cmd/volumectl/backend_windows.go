//go:build windows

package main

import (
	"github.com/GregoryDosh/volumectl/internal/coreaudio"
	"github.com/GregoryDosh/volumectl/internal/hal"
)

func platformBackend() (hal.Accessor, func(), error) {
	ca, err := coreaudio.New()
	if err != nil {
		return nil, nil, err
	}
	return ca, func() {
		if err := ca.Cleanup(); err != nil {
			log.Warn(err)
		}
	}, nil
}
