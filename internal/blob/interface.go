// Package blob implements the key-value persistence layer: a string-keyed
// blob store over a local SQLite database. It is the only durable storage
// mechanism in the application; every payload is a JSON-encoded blob.
package blob

import "context"

// Durable keys. The registered-user list and the current-session user are
// deliberately kept under separate keys.
const (
	// KeyUsers holds the full registered-user list ([]models.User).
	KeyUsers = "users"
	// KeySession holds the current session user (models.User).
	KeySession = "user"
	// KeyRecordings holds all users' recordings ([]models.Recording).
	KeyRecordings = "recordings"
)

// Repository is the string-keyed blob store contract. Get returns
// (nil, nil) when the key is absent. No operation is atomic across keys;
// callers needing a read-modify-write cycle should run the repository
// over a transaction (see dbx.WithTx).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
