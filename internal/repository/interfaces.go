package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no row exists for the requested key.
var ErrNotFound = errors.New("not found")

// SnapshotRepo persists opaque JSON payloads under fixed string keys. The
// progress and settings snapshots live under independent keys so a corrupt
// blob for one never blocks loading the other.
type SnapshotRepo interface {
	Save(ctx context.Context, key, payload string) error
	Load(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
