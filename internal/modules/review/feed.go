package review

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"roombooking/internal/domain"
	"roombooking/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// CORS is open for the REST surface as well.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type FeedHandler struct {
	hub *Hub
}

func NewFeedHandler(hub *Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

func (f *FeedHandler) RegisterRoutes(public gin.IRouter) {
	public.GET("/reviews/:roomId/live", f.Live)
}

// Live handles GET /api/reviews/:roomId/live. The socket only receives;
// anything the client sends is discarded.
func (f *FeedHandler) Live(c *gin.Context) {
	roomID, ok := domain.ParseID(c.Param("roomId"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("review feed upgrade failed: %v", err)
		return
	}

	sub := f.hub.Subscribe(roomID, conn)
	defer f.hub.Unsubscribe(roomID, sub)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
