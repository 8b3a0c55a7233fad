package review

import "strings"

// Rating is a pointer so that a missing rating and a rating of 0 differ.
type CreateReviewRequest struct {
	RoomID   string `json:"roomId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	Username string `json:"username" validate:"required"`
	Rating   *int   `json:"rating" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
}

// normalize trims the free-text fields. Ids are left as sent and must be canonical.
func (r *CreateReviewRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Comment = strings.TrimSpace(r.Comment)
}
