// Package store implements the in-memory observable state container.
//
// The state tree has two independently reduced slices: auth (session
// user) and db (recordings plus status flags). All mutations go through
// Dispatch; all reads are synchronous snapshot reads via State. One
// Store instance lives for the process lifetime and is injected into
// every component that needs it.
package store

import (
	"sync"

	"github.com/antonvlasov/voicenotes/internal/models"
)

// AuthState is the session slice. Invariant: IsAuthenticated is true
// exactly when User is non-nil; reducers maintain it.
type AuthState struct {
	User            *models.User
	IsAuthenticated bool
}

// DBState is the recordings slice.
type DBState struct {
	Recordings []models.Recording
	Loading    bool
	Err        string
}

// State is an immutable snapshot of the full tree. Subscribers must not
// mutate a snapshot they receive; State() hands out defensive copies.
type State struct {
	Auth AuthState
	DB   DBState
}

type subscription struct {
	id int
	fn func()
}

// Store is the process-wide observable state container.
type Store struct {
	mu    sync.RWMutex
	state State

	subMu  sync.Mutex
	subs   []subscription
	nextID int
}

// New returns a Store in its initial state. Loading starts true and is
// cleared by the session bootstrap, so the UI can gate on it.
func New() *Store {
	return &Store{
		state: State{
			DB: DBState{Recordings: []models.Recording{}, Loading: true},
		},
	}
}

// Dispatch applies the action through the pure reducers and then
// notifies all subscribers synchronously, in subscription order, before
// returning. Subscribers are not told which slice changed; they re-read
// via State and diff.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = State{
		Auth: reduceAuth(s.state.Auth, a),
		DB:   reduceDB(s.state.DB, a),
	}
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// Subscribe registers fn to run after every dispatch and returns the
// matching unsubscribe function. Unsubscribing twice is harmless.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// State returns a snapshot of the current state. The recordings list and
// the user are copied so callers cannot mutate store internals.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

func copyState(st State) State {
	out := st
	if st.Auth.User != nil {
		u := *st.Auth.User
		out.Auth.User = &u
	}
	out.DB.Recordings = make([]models.Recording, len(st.DB.Recordings))
	copy(out.DB.Recordings, st.DB.Recordings)
	return out
}
