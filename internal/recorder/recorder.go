// Package recorder owns the capture lifecycle: record, stop, name, play,
// delete, and share. It is a small state machine over one active capture
// session; the UI serializes user-triggered operations, so there is at
// most one capture and one playback alive at any time.
package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/antonvlasov/voicenotes/internal/blob"
	"github.com/antonvlasov/voicenotes/internal/common"
	"github.com/antonvlasov/voicenotes/internal/logging"
	"github.com/antonvlasov/voicenotes/internal/models"
	"github.com/antonvlasov/voicenotes/internal/platform"
	"github.com/antonvlasov/voicenotes/internal/store"
)

// State of the capture workflow.
type State string

const (
	StateIdle      State = "idle"
	StateCapturing State = "capturing"
	// StateNaming is the transient window between stopping a capture and
	// committing (or discarding) a name for it. The recording itself is
	// already in the store by the time this state is entered.
	StateNaming State = "naming"
)

// Service drives the recording workflow. Every db-slice mutation it
// makes is paired with a write of the durable recordings list.
type Service struct {
	store    *store.Store
	blobs    blob.Repository
	capture  platform.Capture
	playback platform.Playback
	share    platform.Share
	log      logging.Logger

	tickEvery time.Duration
	now       func() time.Time

	mu         sync.Mutex
	state      State
	session    platform.Session
	player     platform.Player
	pendingURI string
	elapsed    int
	tickStop   chan struct{}
	onTick     func(seconds int)
}

func NewService(
	st *store.Store,
	blobs blob.Repository,
	capture platform.Capture,
	playback platform.Playback,
	share platform.Share,
	log logging.Logger,
	tickEvery time.Duration,
) *Service {
	if tickEvery <= 0 {
		tickEvery = time.Second
	}
	return &Service{
		store:     st,
		blobs:     blobs,
		capture:   capture,
		playback:  playback,
		share:     share,
		log:       log,
		tickEvery: tickEvery,
		now:       time.Now,
		state:     StateIdle,
	}
}

// SetTickHandler registers a callback invoked once per tick with the
// elapsed capture seconds. Must be set before Start.
func (s *Service) SetTickHandler(fn func(seconds int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

// State returns the current workflow state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the running capture counter in seconds.
func (s *Service) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Start requests a permission grant and opens a capture session. A
// second capture while one is active is rejected with
// common.ErrCaptureInProgress; a denied grant keeps the workflow Idle.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return common.ErrCaptureInProgress
	}

	granted, err := s.capture.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("%w: permission request: %v", common.ErrCaptureFailure, err)
	}
	if !granted {
		return common.ErrPermissionDenied
	}

	session, err := s.capture.Open(ctx)
	if err != nil {
		return fmt.Errorf("%w: open session: %v", common.ErrCaptureFailure, err)
	}
	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("%w: start session: %v", common.ErrCaptureFailure, err)
	}

	s.session = session
	s.state = StateCapturing
	s.elapsed = 0

	stop := make(chan struct{})
	s.tickStop = stop
	go s.runTicker(stop)

	s.log.Info(ctx, "capture started")
	return nil
}

// runTicker advances the elapsed counter once per tick interval until
// the stop channel closes. The channel is closed on every exit from
// Capturing, so the ticker never leaks.
func (s *Service) runTicker(stop chan struct{}) {
	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			if s.state != StateCapturing {
				s.mu.Unlock()
				return
			}
			s.elapsed++
			n := s.elapsed
			fn := s.onTick
			s.mu.Unlock()
			if fn != nil {
				fn(n)
			}
		case <-stop:
			return
		}
	}
}

// Stop finalizes the capture session, commits the new recording to the
// store and durable storage, and enters the naming step. The recording
// is committed before any name is chosen; cancelling the naming step
// keeps it with an empty name.
//
// The store dispatch happens after the lock is released: Dispatch runs
// subscriber callbacks synchronously, and a subscriber is free to read
// back through State or Elapsed.
func (s *Service) Stop(ctx context.Context) (models.Recording, error) {
	s.mu.Lock()

	if s.state != StateCapturing {
		s.mu.Unlock()
		return models.Recording{}, common.ErrNoActiveCapture
	}

	close(s.tickStop)
	s.tickStop = nil

	uri, err := s.session.Stop(ctx)
	s.session = nil
	if err != nil {
		s.state = StateIdle
		s.elapsed = 0
		s.mu.Unlock()
		return models.Recording{}, fmt.Errorf("%w: stop session: %v", common.ErrCaptureFailure, err)
	}

	elapsed := s.elapsed
	s.elapsed = 0
	s.pendingURI = uri
	s.state = StateNaming
	s.mu.Unlock()

	var userID string
	if u := s.store.State().Auth.User; u != nil {
		userID = u.ID
	}

	recording := models.Recording{
		URI:      uri,
		Date:     s.now().UTC().Format(time.RFC3339),
		Duration: models.FormatDuration(elapsed),
		Name:     "",
		UserID:   userID,
	}

	s.store.Dispatch(store.AddRecording{Recording: recording})
	s.persist(ctx)

	s.log.Info(ctx, "capture stopped", "uri", uri, "duration", recording.Duration)
	return recording, nil
}

// SaveName commits the typed name to the recording created by the last
// Stop, identified by the URI remembered at stop time, and returns the
// workflow to Idle.
func (s *Service) SaveName(ctx context.Context, name string) error {
	s.mu.Lock()
	if s.state != StateNaming {
		s.mu.Unlock()
		return common.ErrNoPendingName
	}
	uri := s.pendingURI
	s.pendingURI = ""
	s.state = StateIdle
	s.mu.Unlock()

	s.store.Dispatch(store.SetRecordingData{
		URI:   uri,
		Patch: store.RecordingPatch{Name: &name},
	})
	s.persist(ctx)
	return nil
}

// CancelNaming discards the naming step; the recording keeps its empty
// name and stays committed.
func (s *Service) CancelNaming() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNaming {
		return
	}
	s.pendingURI = ""
	s.state = StateIdle
}

// Play loads and starts playback of the target handle, stopping and
// releasing any active playback first. Failures are surfaced, not
// retried.
func (s *Service) Play(ctx context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		if err := s.player.Stop(ctx); err != nil {
			s.log.Warn(ctx, "failed to stop previous playback", "error", err)
		}
		s.player = nil
	}

	player, err := s.playback.Load(ctx, uri)
	if err != nil {
		return fmt.Errorf("%w: load %s: %v", common.ErrPlaybackFailure, uri, err)
	}
	if err := player.Play(ctx); err != nil {
		_ = player.Stop(ctx)
		return fmt.Errorf("%w: play %s: %v", common.ErrPlaybackFailure, uri, err)
	}

	s.player = player
	return nil
}

// Delete removes every recording with the given URI. No confirmation,
// irreversible. Touches no Service state, so it takes no lock; the
// store serializes its own mutations.
func (s *Service) Delete(ctx context.Context, uri string) error {
	s.store.Dispatch(store.DeleteRecording{URI: uri})
	s.persist(ctx)
	return nil
}

// Share exports the recording through the share capability.
func (s *Service) Share(ctx context.Context, uri string) error {
	if !s.share.IsAvailable(ctx) {
		return common.ErrShareUnavailable
	}
	if err := s.share.Share(ctx, uri); err != nil {
		return fmt.Errorf("share %s: %w", uri, err)
	}
	return nil
}

// Close tears the workflow down: the ticker, any open capture session,
// and any active playback are released.
func (s *Service) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tickStop != nil {
		close(s.tickStop)
		s.tickStop = nil
	}
	if s.session != nil {
		if _, err := s.session.Stop(ctx); err != nil {
			s.log.Warn(ctx, "failed to finalize capture session", "error", err)
		}
		s.session = nil
	}
	if s.player != nil {
		_ = s.player.Stop(ctx)
		s.player = nil
	}
	s.state = StateIdle
	s.elapsed = 0
	s.pendingURI = ""
}
