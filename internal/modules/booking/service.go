package booking

import (
	"context"
	"fmt"
	"log"

	"roombooking/internal/domain"
	"roombooking/internal/pkg/validator"
)

type Service struct {
	bookings BookingStore
}

func NewService(bookings BookingStore) *Service {
	return &Service{bookings: bookings}
}

// CreateBooking stores one booking and returns its id. The booking is not
// linked to a room document and the caller's identity is not checked
// against the booking's email.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (domain.ID, error) {
	req.normalize()
	if errs := validator.Validate(req); errs != nil {
		return domain.ID{}, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	b := &domain.Booking{
		ID:           domain.NewID(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		RoomType:     req.RoomType,
	}

	id, err := s.bookings.InsertOne(ctx, domain.CollectionBookings, b)
	if err != nil {
		return domain.ID{}, err
	}

	log.Printf("booking created id=%s room_type=%s", id.Hex(), b.RoomType)
	return id, nil
}
