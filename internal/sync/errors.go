package sync

import "errors"

var (
	// ErrNotAuthenticated is returned before any I/O when no usable
	// credential is stored.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSyncInFlight is returned when a full sync is already running.
	ErrSyncInFlight = errors.New("sync already in progress")
)
