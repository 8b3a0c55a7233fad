package review

import "errors"

var (
	ErrMissingFields    = errors.New("missing review fields")
	ErrRatingOutOfRange = errors.New("rating out of range")
	ErrInvalidIDs       = errors.New("invalid room or user id")
	ErrInvalidRoomID    = errors.New("invalid room id")
)
