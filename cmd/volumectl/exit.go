package main

import (
	"errors"

	"github.com/GregoryDosh/volumectl/internal/configurator"
	"github.com/GregoryDosh/volumectl/internal/mixer"
	"github.com/GregoryDosh/volumectl/internal/singleinstance"
	"github.com/urfave/cli/v2"
)

const (
	exitFailure     = 1
	exitNotFound    = 2
	exitUnsupported = 3
	exitIO          = 4
	exitUsage       = 64
	exitBusy        = 75
)

var (
	UsageError = errors.New("incorrect usage")

	exitCodes = []struct {
		err  error
		code int
	}{
		{mixer.DeviceNotFoundError, exitNotFound},
		{UsageError, exitUsage},
		{InvalidLevelError, exitUsage},
		{mixer.InvalidDirectionArgumentError, exitUsage},
		{mixer.InvalidMuteActionError, exitUsage},
		{configurator.UnknownBackendError, exitUsage},
		{configurator.MissingFixtureError, exitUsage},
		{mixer.UnsupportedDirectionError, exitUnsupported},
		{mixer.NoUsableDirectionError, exitUnsupported},
		{mixer.NoVolumeAvailableError, exitUnsupported},
		{mixer.NoChannelsAvailableError, exitUnsupported},
		{mixer.MuteNotSupportedError, exitUnsupported},
		{mixer.MuteNotSettableError, exitUnsupported},
		{NoPlatformBackendError, exitUnsupported},
		{mixer.ChannelWriteFailedError, exitIO},
		{mixer.MuteWriteFailedError, exitIO},
		{mixer.PropertyIOError, exitIO},
		{singleinstance.InstanceAlreadyExistsError, exitBusy},
	}
)

func exitCode(err error) int {
	for _, e := range exitCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return exitFailure
}

// exit turns err into a cli.ExitCoder carrying its exit code.
func exit(err error) error {
	if err == nil {
		return nil
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return err
	}
	return cli.Exit(err.Error(), exitCode(err))
}
