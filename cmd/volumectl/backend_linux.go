//go:build linux

package main

import (
	"github.com/GregoryDosh/volumectl/internal/alsa"
	"github.com/GregoryDosh/volumectl/internal/hal"
)

func platformBackend() (hal.Accessor, func(), error) {
	m, err := alsa.NewMixer()
	if err != nil {
		return nil, nil, err
	}
	return m, func() {}, nil
}
