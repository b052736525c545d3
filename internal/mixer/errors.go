package mixer

import (
	"errors"
	"fmt"

	"github.com/GregoryDosh/volumectl/internal/hal"
)

var (
	DeviceNotFoundError           = errors.New("device not found")
	InvalidDirectionArgumentError = errors.New("invalid direction argument")
	UnsupportedDirectionError     = errors.New("direction not supported by device")
	NoUsableDirectionError        = errors.New("device has neither input nor output channels")
	NoVolumeAvailableError        = errors.New("no volume available")
	NoChannelsAvailableError      = errors.New("no channels available")
	ChannelWriteFailedError       = errors.New("channel write failed")
	MuteNotSupportedError         = errors.New("mute not supported")
	MuteNotSettableError          = errors.New("mute not settable")
	MuteWriteFailedError          = errors.New("mute write failed")
	InvalidMuteActionError        = errors.New("invalid mute action")
	PropertyIOError               = errors.New("property i/o error")
)

// DirectionError reports a direction the device has no channels for.
type DirectionError struct {
	Direction hal.Scope
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("%s: %s", UnsupportedDirectionError, e.Direction)
}

func (e *DirectionError) Is(target error) bool {
	return target == UnsupportedDirectionError
}

// ChannelWriteError reports the channel whose settable control rejected a
// write. Channels after it were not written.
type ChannelWriteError struct {
	Channel uint32
	Err     error
}

func (e *ChannelWriteError) Error() string {
	return fmt.Sprintf("%s: channel %d: %v", ChannelWriteFailedError, e.Channel, e.Err)
}

func (e *ChannelWriteError) Is(target error) bool {
	return target == ChannelWriteFailedError
}

func (e *ChannelWriteError) Unwrap() error {
	return e.Err
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", PropertyIOError, err)
}
