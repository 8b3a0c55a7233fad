package catalog

import (
	"context"

	"roombooking/internal/store"
)

// RoomStore is the part of the document store the catalog reads from.
type RoomStore interface {
	Find(ctx context.Context, collection string, q store.Query) ([]store.Document, error)
	FindOne(ctx context.Context, collection string, q store.Query) (store.Document, error)
	Count(ctx context.Context, collection string) (int64, error)
}

// CountCache is optional; a nil cache means every count hits the store.
type CountCache interface {
	Get(ctx context.Context) (int64, bool, error)
	Set(ctx context.Context, n int64) error
}
