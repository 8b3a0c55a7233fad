package booking

import (
	"errors"
	"net/http"

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

// RegisterRoutes expects a group already guarded by JWTAuth.
func (h *Handler) RegisterRoutes(protected gin.IRouter) {
	protected.POST("/book-room", h.CreateBooking)
}

// CreateBooking handles POST /api/book-room
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "All fields are required")
			return
		}
		response.InternalError(c, "Failed to book the room", err, store.Details(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Room booked successfully",
		"bookingId": id,
	})
}
