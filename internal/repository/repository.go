package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter is an exact-match equality filter on top-level fields. An empty
// filter matches every record.
type Filter map[string]any

// Repository is the document store adapter. One collection per entity type.
type Repository interface {
	// Insert stores doc and returns the store-generated id.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Find decodes up to limit matching records into out, which must be a
	// pointer to a slice. Order is whatever the store returns.
	Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// ErrStorageUnavailable means no store is configured or it cannot be reached.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageError is a failed operation against a reachable store.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// Wrap classifies a backend error. Deadline overruns always count as
// unavailability so callers see one error class for "store too slow".
func Wrap(op, collection string, err error, unavailable bool) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if IsUnavailable(err) || errors.As(err, &se) {
		return err
	}
	if unavailable || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s: %v", ErrStorageUnavailable, op, collection, err)
	}
	return &StorageError{Op: op, Collection: collection, Err: err}
}

// ToDocument converts a record into a bson document ready for insertion.
// Store-managed fields (_id, created_at, updated_at) supplied by the caller
// are discarded and the timestamps are set to now.
func ToDocument(record any, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	now = now.UTC()
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}
