package recorder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/antonvlasov/voicenotes/internal/blob"
	"github.com/antonvlasov/voicenotes/internal/models"
	"github.com/antonvlasov/voicenotes/internal/store"
)

// persist writes the recordings list to durable storage right after a
// db-slice dispatch, so the durable copy never trails the in-memory one
// by more than the duration of one write. A failed write is logged and
// surfaced through the error flag; the in-memory state stays committed.
func (s *Service) persist(ctx context.Context) {
	if err := s.persistRecordings(ctx); err != nil {
		s.log.Error(ctx, "failed to persist recordings", "error", err)
		s.store.Dispatch(store.SetError{Message: "failed to save recordings"})
	}
}

// persistRecordings merges the in-memory list into the durable one.
// The store holds only the session user's filtered view, so a wholesale
// write would drop other users' rows: instead the full list is read,
// the session user's subset is replaced, and the whole list is written
// back.
func (s *Service) persistRecordings(ctx context.Context) error {
	snap := s.store.State()

	var userID string
	if snap.Auth.User != nil {
		userID = snap.Auth.User.ID
	}

	all := []models.Recording{}
	data, err := s.blobs.Get(ctx, blob.KeyRecordings)
	if err != nil {
		return err
	}
	if data != nil {
		if err := json.Unmarshal(data, &all); err != nil {
			// Unreadable durable copy: rewrite it from memory.
			s.log.Warn(ctx, "recordings blob unreadable, rewriting", "error", err)
			all = []models.Recording{}
		}
	}

	merged := make([]models.Recording, 0, len(all)+len(snap.DB.Recordings))
	for _, r := range all {
		if r.UserID != userID {
			merged = append(merged, r)
		}
	}
	merged = append(merged, snap.DB.Recordings...)

	out, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encode recordings: %w", err)
	}
	return s.blobs.Set(ctx, blob.KeyRecordings, out)
}
