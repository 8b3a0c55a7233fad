package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roombooking/internal/pkg/response"
	"roombooking/internal/store"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/rooms", h.ListRooms)
	r.GET("/rooms/:id", h.GetRoomByID)
	r.POST("/roomsById", h.GetRoomsByIDs)
	r.GET("/roomCount", h.GetRoomCount)
}

// ListRooms handles GET /rooms?page=&limit=
func (h *Handler) ListRooms(c *gin.Context) {
	page, err := queryInt(c, "page", DefaultPage)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}
	limit, err := queryInt(c, "limit", DefaultLimit)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	rooms, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidPaging) {
			response.Error(c, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}
		response.InternalError(c, "Failed to fetch rooms", err, store.Details(err))
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoomsByIDs handles POST /roomsById with a JSON array of ids.
func (h *Handler) GetRoomsByIDs(c *gin.Context) {
	var raw []any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid IDs provided")
		return
	}

	rooms, err := h.service.ByIDs(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, ErrNoValidIDs) {
			response.Error(c, http.StatusBadRequest, "Invalid IDs provided")
			return
		}
		response.InternalError(c, "Failed to fetch rooms by IDs", err, store.Details(err))
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoomByID handles GET /rooms/:id
func (h *Handler) GetRoomByID(c *gin.Context) {
	room, err := h.service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRoomID):
			response.Error(c, http.StatusBadRequest, "Invalid room ID")
		case errors.Is(err, ErrRoomNotFound):
			response.Message(c, http.StatusNotFound, "Room not found")
		default:
			response.InternalError(c, "Failed to fetch the room", err, store.Details(err))
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

// GetRoomCount handles GET /roomCount
func (h *Handler) GetRoomCount(c *gin.Context) {
	n, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to count rooms", err, store.Details(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalRooms": n})
}

// queryInt falls back to def when the parameter is absent or not a number.
// Negative numbers are returned as is so the service can reject them.
func queryInt(c *gin.Context, name string, def int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def, nil
	}
	if v < 0 {
		return 0, ErrInvalidPaging
	}
	return v, nil
}
