package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lucasferreira/webquest/internal/db"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

func (r *SQLiteSnapshotRepo) Save(ctx context.Context, key, payload string) error {
	query := `INSERT OR REPLACE INTO snapshots (key, payload, updated_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, key, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Load(ctx context.Context, key string) (string, error) {
	query := `SELECT payload FROM snapshots WHERE key = ?`
	var payload string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("snapshot %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return payload, nil
}

func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM snapshots WHERE key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("deleting snapshot %q: %w", key, err)
	}
	return nil
}
