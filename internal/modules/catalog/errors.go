package catalog

import "errors"

var (
	ErrInvalidPaging = errors.New("page and limit must be non-negative integers")
	ErrInvalidRoomID = errors.New("invalid room id")
	ErrNoValidIDs    = errors.New("no valid room ids")
	ErrRoomNotFound  = errors.New("room not found")
)
