package models

import "fmt"

// Recording is one captured audio note.
//
// URI is the opaque handle assigned by the capture capability and is the
// identity key. Name is empty right after capture; a recording with an
// empty name is valid and rendered with a placeholder.
type Recording struct {
	URI      string `json:"uri"`
	Date     string `json:"date"`     // ISO-8601 timestamp
	Duration string `json:"duration"` // MM:SS
	Name     string `json:"name"`
	UserID   string `json:"userId,omitempty"`
}

// DisplayName returns the recording name, or a placeholder when unset.
func (r Recording) DisplayName() string {
	if r.Name == "" {
		return "..."
	}
	return r.Name
}

// FormatDuration renders an elapsed-seconds counter as zero-padded MM:SS.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
