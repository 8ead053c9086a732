package store

import "github.com/antonvlasov/voicenotes/internal/models"

// Action is a request to mutate the state tree. Every action is handled
// by a pure reducer; malformed payloads are a programming error, not a
// runtime-recoverable condition.
type Action interface {
	isAction()
}

// Auth slice actions.

// Login sets the session user and marks the session authenticated.
type Login struct {
	User models.User
}

// Logout clears the session user and empties the recordings view, which
// belongs to that user.
type Logout struct{}

// SetUser sets the session user; authenticated follows from non-nil.
type SetUser struct {
	User *models.User
}

// DB slice actions.

// SetRecordings replaces the recordings list wholesale.
type SetRecordings struct {
	List []models.Recording
}

// AddRecording appends one entry. No duplicate-URI check is performed.
type AddRecording struct {
	Recording models.Recording
}

// DeleteRecording removes every entry with a matching URI, preserving
// the relative order of the rest.
type DeleteRecording struct {
	URI string
}

// SetLoading toggles the loading flag.
type SetLoading struct {
	Loading bool
}

// SetError records a user-visible error message.
type SetError struct {
	Message string
}

// ClearError resets the error message.
type ClearError struct{}

// RecordingPatch carries the optional fields merged by SetRecordingData.
// Nil fields are left untouched.
type RecordingPatch struct {
	Name     *string
	Date     *string
	Duration *string
}

// SetRecordingData merges the patch into the first entry whose URI
// matches; it is a no-op when no entry matches.
type SetRecordingData struct {
	URI   string
	Patch RecordingPatch
}

func (Login) isAction()            {}
func (Logout) isAction()           {}
func (SetUser) isAction()          {}
func (SetRecordings) isAction()    {}
func (AddRecording) isAction()     {}
func (DeleteRecording) isAction()  {}
func (SetLoading) isAction()       {}
func (SetError) isAction()         {}
func (ClearError) isAction()       {}
func (SetRecordingData) isAction() {}
