package guide

import "errors"

var (
	// ErrServicesUnavailable wraps failures of the services listing.
	ErrServicesUnavailable = errors.New("channel list unavailable")

	// ErrNoChannels means the upstream answered but no channel has a program on air.
	ErrNoChannels = errors.New("no channels with current programs")
)
