package review

import (
	"context"
	"time"

	"roombooking/internal/domain"
	"roombooking/internal/pkg/validator"
	"roombooking/internal/store"
)

type Service struct {
	reviews   ReviewStore
	publisher Publisher
	now       func() time.Time
}

func NewService(reviews ReviewStore, publisher Publisher) *Service {
	return &Service{reviews: reviews, publisher: publisher, now: time.Now}
}

// Create validates and stores a review with a server-side timestamp.
// Room and user ids are checked for shape only.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	req.normalize()
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrMissingFields
	}
	if *req.Rating < domain.MinRating || *req.Rating > domain.MaxRating {
		return nil, ErrRatingOutOfRange
	}

	roomID, okRoom := domain.ParseID(req.RoomID)
	userID, okUser := domain.ParseID(req.UserID)
	if !okRoom || !okUser {
		return nil, ErrInvalidIDs
	}

	rv := &domain.Review{
		ID:        domain.NewID(),
		RoomID:    roomID,
		UserID:    userID,
		Username:  req.Username,
		Rating:    *req.Rating,
		Comment:   req.Comment,
		Timestamp: s.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := s.reviews.InsertOne(ctx, domain.CollectionReviews, rv); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Publish(roomID, rv)
	}
	return rv, nil
}

func (s *Service) GetByRoom(ctx context.Context, rawRoomID string) ([]store.Document, error) {
	roomID, ok := domain.ParseID(rawRoomID)
	if !ok {
		return nil, ErrInvalidRoomID
	}
	return s.reviews.Find(ctx, domain.CollectionReviews, store.Query{
		Where: map[string]any{"roomId": roomID},
	})
}
