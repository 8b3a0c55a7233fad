// Package store provides the document store adapters used by the gateway:
// find, findOne, insertOne and count over named collections.
package store

import (
	"context"
	"errors"
	"fmt"

	"roombooking/internal/domain"
)

var ErrNotFound = errors.New("document not found")

// Document is an opaque stored document. "_id" always holds the identifier.
type Document map[string]any

// Record is anything that can be inserted: it carries its own identifier.
type Record interface {
	DocumentID() domain.ID
}

// Query selects documents of one collection. Zero values mean "no constraint".
type Query struct {
	IDs   []domain.ID
	Where map[string]any
	Skip  int64
	Limit int64
}

type DocumentStore interface {
	Find(ctx context.Context, collection string, q Query) ([]Document, error)
	FindOne(ctx context.Context, collection string, q Query) (Document, error)
	InsertOne(ctx context.Context, collection string, rec Record) (domain.ID, error)
	Count(ctx context.Context, collection string) (int64, error)
	Close(ctx context.Context) error
}

// Error wraps a backing-store failure.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Collection: collection, Err: err}
}

// Details returns the backing driver's error text for err, or err's own text
// when it did not come from a store adapter.
func Details(err error) string {
	var storeErr *Error
	if errors.As(err, &storeErr) && storeErr.Err != nil {
		return storeErr.Err.Error()
	}
	return err.Error()
}
