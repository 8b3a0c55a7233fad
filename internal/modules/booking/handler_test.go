package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/internal/database"
	"roombooking/internal/domain"
	"roombooking/internal/middleware"
	"roombooking/internal/pkg/jwt"
	"roombooking/internal/store"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.SQLStore, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:booking_%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	s := store.NewSQLStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	tokens := jwt.New("test-secret", time.Hour)
	token, err := tokens.Issue("guest@example.com")
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.JWTAuth(tokens))
	NewHandler(NewService(s)).RegisterRoutes(api)

	return router, s, token
}

func performRequest(router *gin.Engine, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/book-room", &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookingBody() map[string]any {
	return map[string]any{
		"name":         "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "+1 555 0100",
		"checkInDate":  "2026-12-01",
		"checkOutDate": "2026-12-04",
		"roomType":     "Deluxe",
	}
}

func TestCreateBooking_Created(t *testing.T) {
	router, s, token := setupRouter(t)

	w := performRequest(router, bookingBody(), token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message   string `json:"message"`
		BookingID string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Room booked successfully", resp.Message)

	id, ok := domain.ParseID(resp.BookingID)
	require.True(t, ok)

	doc, err := s.FindOne(context.Background(), domain.CollectionBookings, store.Query{IDs: []domain.ID{id}})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", doc["email"])
	assert.Equal(t, "2026-12-04", doc["checkOutDate"])
}

func TestCreateBooking_MissingPhone(t *testing.T) {
	router, s, token := setupRouter(t)

	body := bookingBody()
	delete(body, "phone")
	w := performRequest(router, body, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All fields are required"}`, w.Body.String())

	n, err := s.Count(context.Background(), domain.CollectionBookings)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateBooking_RequiresToken(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := performRequest(router, bookingBody(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(router, bookingBody(), "garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
