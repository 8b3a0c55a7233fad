package booking

import (
	"context"

	"roombooking/internal/domain"
	"roombooking/internal/store"
)

// BookingStore defines the write side used for bookings.
type BookingStore interface {
	InsertOne(ctx context.Context, collection string, rec store.Record) (domain.ID, error)
}
