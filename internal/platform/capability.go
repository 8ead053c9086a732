// Package platform defines the ambient capability interfaces the core
// logic depends on: audio capture, playback, and sharing. The interfaces
// keep the platform media layer opaque so the recorder can be tested
// with fakes; the Local* types provide file-backed implementations.
package platform

import "context"

// Capture grants access to the platform recording capability.
type Capture interface {
	// RequestPermission asks for a capture-permission grant.
	RequestPermission(ctx context.Context) (bool, error)

	// Open prepares a new capture session.
	Open(ctx context.Context) (Session, error)
}

// Session is one opaque capture session. Stop finalizes the session and
// returns the handle (URI) of the captured media; the session cannot be
// reused afterwards.
type Session interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) (string, error)
}

// Playback loads captured media for replay.
type Playback interface {
	Load(ctx context.Context, uri string) (Player, error)
}

// Player is one loaded piece of media. At most one player is kept active
// by the recorder at any time.
type Player interface {
	Play(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Share exports captured media through a platform share facility.
type Share interface {
	IsAvailable(ctx context.Context) bool
	Share(ctx context.Context, uri string) error
}
