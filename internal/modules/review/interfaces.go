package review

import (
	"context"

	"roombooking/internal/domain"
	"roombooking/internal/store"
)

type ReviewStore interface {
	Find(ctx context.Context, collection string, q store.Query) ([]store.Document, error)
	InsertOne(ctx context.Context, collection string, rec store.Record) (domain.ID, error)
}

// Publisher receives every stored review. It must not block for long.
type Publisher interface {
	Publish(roomID domain.ID, rv *domain.Review)
}
