package domain

const CollectionBookings = "bookings"

type Booking struct {
	ID           ID     `bson:"_id" json:"_id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	CheckInDate  string `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate string `bson:"checkOutDate" json:"checkOutDate"`
	RoomType     string `bson:"roomType" json:"roomType"`
}

func (b *Booking) DocumentID() ID { return b.ID }
