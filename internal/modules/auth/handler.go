package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roombooking/internal/middleware"
	jwtsvc "roombooking/internal/pkg/jwt"
	"roombooking/internal/pkg/response"
)

type Handler struct {
	tokens *jwtsvc.Service
}

func NewHandler(tokens *jwtsvc.Service) *Handler {
	return &Handler{tokens: tokens}
}

func (h *Handler) RegisterRoutes(public, protected gin.IRouter) {
	if public != nil {
		public.POST("/login", h.Login)
	}
	if protected != nil {
		protected.GET("/protected", h.Protected)
	}
}

// Login handles POST /login. Any email gets a token; there is no user
// registry behind it.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		response.Message(c, http.StatusBadRequest, "Email is required")
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		if errors.Is(err, jwtsvc.ErrEmptyClaim) {
			response.Message(c, http.StatusBadRequest, "Email is required")
			return
		}
		log.Printf("token issue failed: %v", err)
		response.Message(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Protected handles GET /api/protected
func (h *Handler) Protected(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the protected route!",
		"user":    claims,
	})
}
