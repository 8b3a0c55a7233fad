package booking

import "strings"

type CreateBookingRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	CheckInDate  string `json:"checkInDate" validate:"required"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
	RoomType     string `json:"roomType" validate:"required"`
}

func (r *CreateBookingRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.CheckInDate = strings.TrimSpace(r.CheckInDate)
	r.CheckOutDate = strings.TrimSpace(r.CheckOutDate)
	r.RoomType = strings.TrimSpace(r.RoomType)
}
