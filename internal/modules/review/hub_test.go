package review

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/internal/domain"
)

// stalledConn accepts one write and then blocks until closed, like a client
// that stopped reading.
type stalledConn struct {
	closed chan struct{}
	once   sync.Once
	writes atomic.Int32
}

func newStalledConn() *stalledConn {
	return &stalledConn{closed: make(chan struct{})}
}

func (c *stalledConn) WriteJSON(v interface{}) error {
	c.writes.Add(1)
	<-c.closed
	return errors.New("use of closed connection")
}

func (c *stalledConn) SetWriteDeadline(time.Time) error { return nil }

func (c *stalledConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

// recordingConn keeps every review written to it.
type recordingConn struct {
	mu     sync.Mutex
	got    []*domain.Review
	closed atomic.Bool
}

func (c *recordingConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, v.(*domain.Review))
	return nil
}

func (c *recordingConn) SetWriteDeadline(time.Time) error { return nil }

func (c *recordingConn) Close() error {
	c.closed.Store(true)
	return nil
}

func (c *recordingConn) received() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.got)
}

func TestHub_PublishDoesNotWaitForStalledSubscriber(t *testing.T) {
	hub := NewHub()
	t.Cleanup(hub.Close)

	roomID := domain.NewID()
	stalled := newStalledConn()
	hub.Subscribe(roomID, stalled)

	start := time.Now()
	for i := 0; i < sendBuffer+2; i++ {
		hub.Publish(roomID, &domain.Review{ID: domain.NewID(), RoomID: roomID, Rating: 3})
	}
	assert.Less(t, time.Since(start), time.Second)

	assert.Equal(t, 0, hub.SubscriberCount(roomID))
	select {
	case <-stalled.closed:
	default:
		t.Fatal("stalled subscriber was not closed")
	}
	assert.LessOrEqual(t, stalled.writes.Load(), int32(1))

	// the room keeps working for new subscribers
	healthy := &recordingConn{}
	hub.Subscribe(roomID, healthy)
	hub.Publish(roomID, &domain.Review{ID: domain.NewID(), RoomID: roomID, Rating: 4})
	require.Eventually(t, func() bool { return healthy.received() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, healthy.closed.Load())
}

func TestHub_PublishOnlyToRoom(t *testing.T) {
	hub := NewHub()
	t.Cleanup(hub.Close)

	roomA, roomB := domain.NewID(), domain.NewID()
	conn := &recordingConn{}
	hub.Subscribe(roomA, conn)

	hub.Publish(roomB, &domain.Review{ID: domain.NewID(), RoomID: roomB})
	hub.Publish(roomA, &domain.Review{ID: domain.NewID(), RoomID: roomA})

	require.Eventually(t, func() bool { return conn.received() == 1 }, time.Second, 10*time.Millisecond)
	conn.mu.Lock()
	assert.Equal(t, roomA, conn.got[0].RoomID)
	conn.mu.Unlock()
}

func TestHub_UnsubscribeAndClose(t *testing.T) {
	hub := NewHub()
	roomID := domain.NewID()

	a, b := &recordingConn{}, &recordingConn{}
	subA := hub.Subscribe(roomID, a)
	hub.Subscribe(roomID, b)
	require.Equal(t, 2, hub.SubscriberCount(roomID))

	hub.Unsubscribe(roomID, subA)
	hub.Unsubscribe(roomID, subA)
	assert.Equal(t, 1, hub.SubscriberCount(roomID))
	assert.True(t, a.closed.Load())

	hub.Close()
	assert.Equal(t, 0, hub.SubscriberCount(roomID))
	assert.True(t, b.closed.Load())
}
