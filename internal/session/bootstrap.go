// Package session implements the one-time startup sequence that hydrates
// the in-memory store from durable storage.
package session

import (
	"context"
	"encoding/json"

	"github.com/antonvlasov/voicenotes/internal/blob"
	"github.com/antonvlasov/voicenotes/internal/logging"
	"github.com/antonvlasov/voicenotes/internal/models"
	"github.com/antonvlasov/voicenotes/internal/store"
)

type Service struct {
	store *store.Store
	blobs blob.Repository
	log   logging.Logger
}

func New(st *store.Store, blobs blob.Repository, log logging.Logger) *Service {
	return &Service{store: st, blobs: blobs, log: log}
}

// Bootstrap loads the persisted session user and recordings, filters the
// recordings to the session user, and populates the store. Failures are
// logged and degrade to the empty initial state; Bootstrap always
// returns, and always clears the loading flag, so startup never hangs.
func (s *Service) Bootstrap(ctx context.Context) {
	defer s.store.Dispatch(store.SetLoading{Loading: false})

	user := s.loadSessionUser(ctx)
	if user != nil {
		s.store.Dispatch(store.SetUser{User: user})
	}

	recordings := s.loadRecordings(ctx)
	if user != nil {
		filtered := make([]models.Recording, 0, len(recordings))
		for _, r := range recordings {
			if r.UserID == user.ID {
				filtered = append(filtered, r)
			}
		}
		recordings = filtered
	} else {
		recordings = []models.Recording{}
	}
	s.store.Dispatch(store.SetRecordings{List: recordings})
}

func (s *Service) loadSessionUser(ctx context.Context) *models.User {
	data, err := s.blobs.Get(ctx, blob.KeySession)
	if err != nil {
		s.log.Error(ctx, "failed to read session user", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Error(ctx, "failed to parse session user", "error", err)
		return nil
	}
	return &user
}

func (s *Service) loadRecordings(ctx context.Context) []models.Recording {
	data, err := s.blobs.Get(ctx, blob.KeyRecordings)
	if err != nil {
		s.log.Error(ctx, "failed to read recordings", "error", err)
		return []models.Recording{}
	}
	if data == nil {
		return []models.Recording{}
	}

	var recordings []models.Recording
	if err := json.Unmarshal(data, &recordings); err != nil {
		s.log.Error(ctx, "failed to parse recordings", "error", err)
		return []models.Recording{}
	}
	return recordings
}
