// Package store defines the narrow persistence seam the engine works
// against. The actual mechanism behind it (SQLite, in-memory) is swappable;
// the engine assumes only that an insert is fully visible to subsequent
// queries for the same user, or fails without persisting anything.
package store

import (
	"context"
	"errors"

	"satnica/internal/core"
)

// RecordStore persists and retrieves work-hours records.
type RecordStore interface {
	// Insert persists a record candidate (ID empty) and returns the stored
	// record with its store-assigned ID.
	Insert(ctx context.Context, r core.WorkRecord) (core.WorkRecord, error)

	// ListByUser returns all records owned by userID in no guaranteed order.
	ListByUser(ctx context.Context, userID string) ([]core.WorkRecord, error)

	// ListByUserOrderedByDate returns the user's records ascending by date.
	ListByUserOrderedByDate(ctx context.Context, userID string) ([]core.WorkRecord, error)
}

// ErrNotFound reports a lookup that matched nothing.
var ErrNotFound = errors.New("record not found")

// StorageError wraps a backend failure so callers can tell it apart from
// validation errors with errors.As. The core performs no retries; retry
// policy belongs to the backend.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err carries a StorageError anywhere in its
// chain.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
