package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/antonvlasov/voicenotes/internal/common"
	"github.com/antonvlasov/voicenotes/internal/models"
)

// List prints the session user's recordings, newest last. A non-empty
// query filters by case-insensitive name substring or by date substring.
// Printed numbers are positions in the full list, not in the filtered
// view, so they stay valid as arguments to play/delete/share.
func (a *App) List(ctx context.Context, query string) error {
	if !a.requireLogin() {
		return nil
	}

	entries := a.filtered(query)
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No recordings.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(a.out, "%d. %s - %s - %s\n", e.pos, e.rec.DisplayName(), e.rec.Date, e.rec.Duration)
	}
	return nil
}

func (a *App) Play(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	rec, err := a.recordingAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.recorder.Play(ctx, rec.URI); err != nil {
		a.log.Error(ctx, "playback failed", "uri", rec.URI, "error", err)
		fmt.Fprintln(a.out, "Failed to play the recording.")
		return err
	}
	fmt.Fprintf(a.out, "Playing %s...\n", rec.DisplayName())
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	rec, err := a.recordingAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.recorder.Delete(ctx, rec.URI); err != nil {
		a.log.Error(ctx, "delete failed", "uri", rec.URI, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", rec.DisplayName())
	return nil
}

func (a *App) Share(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	rec, err := a.recordingAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.recorder.Share(ctx, rec.URI); err != nil {
		if errors.Is(err, common.ErrShareUnavailable) {
			fmt.Fprintln(a.out, "Sharing is not available on this device.")
			return err
		}
		a.log.Error(ctx, "share failed", "uri", rec.URI, "error", err)
		fmt.Fprintln(a.out, "Failed to share the recording.")
		return err
	}
	fmt.Fprintf(a.out, "Shared %s.\n", rec.DisplayName())
	return nil
}

// listEntry pairs a recording with its 1-based position in the full
// list, so filtered listings keep the positions stable.
type listEntry struct {
	pos int
	rec models.Recording
}

func (a *App) filtered(query string) []listEntry {
	recordings := a.store.State().DB.Recordings
	q := strings.ToLower(query)

	out := make([]listEntry, 0, len(recordings))
	for i, r := range recordings {
		if query != "" && !strings.Contains(strings.ToLower(r.Name), q) && !strings.Contains(r.Date, query) {
			continue
		}
		out = append(out, listEntry{pos: i + 1, rec: r})
	}
	return out
}

// recordingAt resolves a 1-based list position into a recording.
func (a *App) recordingAt(arg string) (models.Recording, error) {
	recordings := a.store.State().DB.Recordings

	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return models.Recording{}, fmt.Errorf("expected a recording number, got %q", arg)
	}
	if n < 1 || n > len(recordings) {
		return models.Recording{}, fmt.Errorf("recording #%d: %w", n, common.ErrNotFound)
	}
	return recordings[n-1], nil
}
