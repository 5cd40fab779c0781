package storage

import (
	"context"
	"errors"
)

// ErrSaveFailed wraps collaborator write failures so callers can distinguish
// them from load problems.
var ErrSaveFailed = errors.New("could not save document")

// Store is the persistence collaborator: whole JSON documents addressed by
// key. There are no partial writes; every Save replaces the full document.
type Store interface {
	// Load returns the document body for key. The second return value is
	// false when no document has been stored under that key yet.
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key string, body string) error
	Delete(ctx context.Context, key string) error
}
