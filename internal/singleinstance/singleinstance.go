// Package singleinstance keeps two volumectl processes from changing device
// state at the same time.
package singleinstance

import "errors"

var InstanceAlreadyExistsError = errors.New("unable to get instance lock")

// Name is the lock every volumectl process that writes to a device takes.
const Name = "volumectl-b3d17eec-fb55-43ad-9a6e-f44946165bd1"
