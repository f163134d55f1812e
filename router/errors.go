package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/stream"
	"github.com/yleguide/yleguide/yle"
)

// ErrSuperseded is returned by a transition that a newer Navigate replaced.
// Callers ignore it.
var ErrSuperseded = errors.New("navigation superseded")

// IsRecoverable reports whether err leaves the application usable, so the view
// can show a message and stay open. Credential and configuration problems are not.
func IsRecoverable(err error) bool {
	if err == nil {
		return true
	}

	var status *yle.StatusError
	if errors.As(err, &status) {
		return status.Code != http.StatusUnauthorized && status.Code != http.StatusForbidden
	}

	var decrypt *stream.DecryptError
	if errors.As(err, &decrypt) {
		return false
	}

	switch {
	case errors.Is(err, ErrSuperseded),
		errors.Is(err, guide.ErrServicesUnavailable),
		errors.Is(err, guide.ErrNoChannels),
		errors.Is(err, stream.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return true
	}

	return false
}
