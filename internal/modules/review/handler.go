package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roombooking/internal/pkg/response"
	"roombooking/internal/store"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected gin.IRouter) {
	// Public routes (no auth required)
	if public != nil {
		public.GET("/reviews/:roomId", h.GetByRoom)
	}

	// Protected routes (auth required)
	if protected != nil {
		protected.POST("/reviews", h.Create)
	}
}

// Create handles POST /api/reviews
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "All fields are required!")
		case errors.Is(err, ErrRatingOutOfRange):
			response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5!")
		case errors.Is(err, ErrInvalidIDs):
			response.Error(c, http.StatusBadRequest, "Invalid roomId or userId")
		default:
			response.InternalError(c, "Failed to add review", err, store.Details(err))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review added successfully",
		"review":  rv,
	})
}

// GetByRoom handles GET /api/reviews/:roomId
func (h *Handler) GetByRoom(c *gin.Context) {
	items, err := h.svc.GetByRoom(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		if errors.Is(err, ErrInvalidRoomID) {
			response.Error(c, http.StatusBadRequest, "Invalid room ID")
			return
		}
		response.InternalError(c, "Failed to fetch reviews", err, store.Details(err))
		return
	}

	c.JSON(http.StatusOK, items)
}
