package domain

import "time"

const CollectionReviews = "reviews"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        ID        `bson:"_id" json:"_id"`
	RoomID    ID        `bson:"roomId" json:"roomId"`
	UserID    ID        `bson:"userId" json:"userId"`
	Username  string    `bson:"username" json:"username"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

func (r *Review) DocumentID() ID { return r.ID }
