package blob

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/antonvlasov/voicenotes/internal/common"
	"github.com/antonvlasov/voicenotes/internal/dbx"
)

// SQLiteRepository stores blobs in a single key/value table. It accepts a
// dbx.DBTX so the same code runs over both *sql.DB and *sql.Tx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get blobs[%s]: %v", common.ErrStorageUnavailable, key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set blobs[%s]: %v", common.ErrStorageUnavailable, key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: delete blobs[%s]: %v", common.ErrStorageUnavailable, key, err)
	}
	return nil
}
