// Package common defines shared sentinel errors used across the
// application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Persistence errors.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrParseFailure       = errors.New("parse failure")
	ErrNotFound           = errors.New("not found")

	// Account errors. A failed login is always reported as a single
	// generic mismatch, with no unknown-email/wrong-password distinction.
	ErrCredentialMismatch = errors.New("invalid email or password")

	// Capture/playback/share capability errors.
	ErrPermissionDenied  = errors.New("microphone permission denied")
	ErrCaptureFailure    = errors.New("capture failure")
	ErrPlaybackFailure   = errors.New("playback failure")
	ErrShareUnavailable  = errors.New("sharing is not available")
	ErrCaptureInProgress = errors.New("capture already in progress")
	ErrNoActiveCapture   = errors.New("no active capture")
	ErrNoPendingName     = errors.New("no recording awaiting a name")
)
