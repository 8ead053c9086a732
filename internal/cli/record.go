package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonvlasov/voicenotes/internal/common"
)

func (a *App) Record(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	err := a.recorder.Start(ctx)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Recording... type 'stop' to finish.")
		return nil
	case errors.Is(err, common.ErrPermissionDenied):
		fmt.Fprintln(a.out, "Permission to access the microphone is required!")
		return err
	case errors.Is(err, common.ErrCaptureInProgress):
		fmt.Fprintln(a.out, "A recording is already in progress.")
		return err
	default:
		a.log.Error(ctx, "failed to start recording", "error", err)
		fmt.Fprintln(a.out, "Failed to start recording.")
		return err
	}
}

// StopRecording finalizes the capture and runs the naming step inline:
// an empty name cancels it and keeps the recording unnamed.
func (a *App) StopRecording(ctx context.Context) error {
	rec, err := a.recorder.Stop(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoActiveCapture) {
			fmt.Fprintln(a.out, "Nothing is being recorded.")
			return err
		}
		a.log.Error(ctx, "failed to stop recording", "error", err)
		fmt.Fprintln(a.out, "Failed to stop recording.")
		return err
	}

	fmt.Fprintf(a.out, "\nCaptured %s.\n", rec.Duration)

	name, err := GetSimpleText(a.reader, "Name of recording (leave empty to skip)", a.out)
	if err != nil || name == "" {
		a.recorder.CancelNaming()
		return nil
	}

	if err := a.recorder.SaveName(ctx, name); err != nil {
		a.log.Error(ctx, "failed to name recording", "error", err)
		fmt.Fprintln(a.out, "Failed to save the name.")
		return err
	}
	fmt.Fprintf(a.out, "Saved as %q.\n", name)
	return nil
}
