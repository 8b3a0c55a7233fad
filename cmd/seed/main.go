package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"roombooking/internal/config"
	"roombooking/internal/database"
	"roombooking/internal/domain"
)

var roomTypes = []string{"Single", "Double", "Suite", "Deluxe"}

var descriptions = []string{
	"Quiet room facing the inner courtyard.",
	"Bright corner room with a city view.",
	"Spacious room with a separate lounge area.",
	"Top floor room with a private balcony.",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	docs, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal("store connection failed: ", err)
	}
	defer func() {
		if err := docs.Close(ctx); err != nil {
			log.Printf("store close: %v", err)
		}
	}()

	existing, err := docs.Count(ctx, domain.CollectionRooms)
	if err != nil {
		log.Fatal("count rooms failed: ", err)
	}
	if existing > 0 {
		log.Printf("rooms already seeded count=%d, skipping", existing)
		return
	}

	log.Println("Creating rooms...")
	for i, room := range sampleRooms(rand.New(rand.NewSource(time.Now().UnixNano())), 20) {
		id, err := docs.InsertOne(ctx, domain.CollectionRooms, room)
		if err != nil {
			log.Fatalf("insert room %d failed: %v", i+1, err)
		}
		log.Printf("room created id=%s title=%q", id.Hex(), room.Title)
	}
	log.Println("Seed completed")
}

func sampleRooms(rng *rand.Rand, n int) []*domain.Room {
	rooms := make([]*domain.Room, 0, n)
	for i := 0; i < n; i++ {
		roomType := roomTypes[rng.Intn(len(roomTypes))]
		rooms = append(rooms, &domain.Room{
			ID:          domain.NewID(),
			Title:       fmt.Sprintf("%s Room %d", roomType, 101+i),
			RoomType:    roomType,
			Price:       float64(60 + rng.Intn(15)*10),
			Capacity:    1 + rng.Intn(4),
			Description: descriptions[rng.Intn(len(descriptions))],
			Images:      []string{fmt.Sprintf("/images/room-%d.jpg", 1+i%8)},
		})
	}
	return rooms
}
