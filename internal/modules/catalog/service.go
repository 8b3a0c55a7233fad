package catalog

import (
	"context"
	"errors"
	"log"
	"math"

	"roombooking/internal/domain"
	"roombooking/internal/store"
)

const (
	DefaultPage  = 0
	DefaultLimit = 15
)

type Service struct {
	rooms  RoomStore
	counts CountCache
}

func NewService(rooms RoomStore, counts CountCache) *Service {
	return &Service{rooms: rooms, counts: counts}
}

// List returns page `page` of size `limit`. Pages past the end are empty.
func (s *Service) List(ctx context.Context, page, limit int64) ([]store.Document, error) {
	if page < 0 || limit < 0 {
		return nil, ErrInvalidPaging
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page > math.MaxInt64/limit {
		return []store.Document{}, nil
	}
	return s.rooms.Find(ctx, domain.CollectionRooms, store.Query{
		Skip:  page * limit,
		Limit: limit,
	})
}

// ByIDs drops malformed ids and fails only when none are left.
func (s *Service) ByIDs(ctx context.Context, raw []any) ([]store.Document, error) {
	ids := domain.FilterIDs(raw)
	if len(ids) == 0 {
		return nil, ErrNoValidIDs
	}
	return s.rooms.Find(ctx, domain.CollectionRooms, store.Query{IDs: ids})
}

func (s *Service) ByID(ctx context.Context, rawID string) (store.Document, error) {
	id, ok := domain.ParseID(rawID)
	if !ok {
		return nil, ErrInvalidRoomID
	}

	room, err := s.rooms.FindOne(ctx, domain.CollectionRooms, store.Query{IDs: []domain.ID{id}})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	if s.counts != nil {
		n, ok, err := s.counts.Get(ctx)
		if err != nil {
			log.Printf("room count cache get failed: %v", err)
		} else if ok {
			return n, nil
		}
	}

	n, err := s.rooms.Count(ctx, domain.CollectionRooms)
	if err != nil {
		return 0, err
	}

	if s.counts != nil {
		if err := s.counts.Set(ctx, n); err != nil {
			log.Printf("room count cache set failed: %v", err)
		}
	}
	return n, nil
}
