package domain

const CollectionRooms = "rooms"

// Room is only used by the seeder; the gateway treats rooms as opaque documents.
type Room struct {
	ID          ID       `bson:"_id" json:"_id"`
	Title       string   `bson:"title" json:"title"`
	RoomType    string   `bson:"roomType" json:"roomType"`
	Price       float64  `bson:"price" json:"price"`
	Capacity    int      `bson:"capacity" json:"capacity"`
	Description string   `bson:"description" json:"description"`
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`
}

func (r *Room) DocumentID() ID { return r.ID }
