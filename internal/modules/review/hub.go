package review

import (
	"log"
	"sync"
	"time"

	"roombooking/internal/domain"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16
)

// Socket is the part of *websocket.Conn the hub writes through.
type Socket interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Subscriber owns one socket. Reviews are queued on send and written by the
// subscriber's own goroutine, so a slow client never holds up Publish.
type Subscriber struct {
	conn Socket
	send chan *domain.Review
	done chan struct{}
	once sync.Once
}

func newSubscriber(conn Socket) *Subscriber {
	s := &Subscriber{
		conn: conn,
		send: make(chan *domain.Review, sendBuffer),
		done: make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

func (s *Subscriber) writeLoop() {
	for {
		select {
		case rv := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(rv); err != nil {
				log.Printf("review feed write failed: %v", err)
				s.close()
				return
			}
		case <-s.done:
			return
		}
	}
}

// offer queues rv without blocking. It reports false when the subscriber is
// closed or its queue is full.
func (s *Subscriber) offer(rv *domain.Review) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- rv:
		return true
	default:
		return false
	}
}

func (s *Subscriber) close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// Hub fans new reviews out to the sockets watching a room.
type Hub struct {
	rooms map[domain.ID]map[*Subscriber]struct{}
	mutex sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[domain.ID]map[*Subscriber]struct{}),
	}
}

func (h *Hub) Subscribe(roomID domain.ID, conn Socket) *Subscriber {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	sub := newSubscriber(conn)
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Subscriber]struct{})
	}
	h.rooms[roomID][sub] = struct{}{}
	return sub
}

func (h *Hub) Unsubscribe(roomID domain.ID, sub *Subscriber) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	sub.close()

	subs, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.rooms, roomID)
	}
}

// Publish implements Publisher and never blocks on a socket. Subscribers
// that are closed or too far behind are dropped.
func (h *Hub) Publish(roomID domain.ID, rv *domain.Review) {
	h.mutex.RLock()
	subs := make([]*Subscriber, 0, len(h.rooms[roomID]))
	for sub := range h.rooms[roomID] {
		subs = append(subs, sub)
	}
	h.mutex.RUnlock()

	for _, sub := range subs {
		if !sub.offer(rv) {
			log.Printf("review feed subscriber dropped room=%s", roomID.Hex())
			h.Unsubscribe(roomID, sub)
		}
	}
}

func (h *Hub) SubscriberCount(roomID domain.ID) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.rooms[roomID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for roomID, subs := range h.rooms {
		for sub := range subs {
			sub.close()
		}
		delete(h.rooms, roomID)
	}
}
