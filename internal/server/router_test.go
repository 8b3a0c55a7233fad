package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/internal/database"
	"roombooking/internal/domain"
	"roombooking/internal/modules/review"
	jwtsvc "roombooking/internal/pkg/jwt"
	"roombooking/internal/store"
)

type suite struct {
	router *gin.Engine
	store  *store.SQLStore
	rooms  []domain.ID
}

func setupSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:server_%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	s := store.NewSQLStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	var rooms []domain.ID
	for i := 0; i < 3; i++ {
		id, err := s.InsertOne(context.Background(), domain.CollectionRooms, &domain.Room{ID: domain.NewID(), Title: fmt.Sprintf("Room %d", i)})
		require.NoError(t, err)
		rooms = append(rooms, id)
	}

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "hello.txt"), []byte("hello"), 0o644))

	hub := review.NewHub()
	t.Cleanup(hub.Close)

	router := NewRouter(Deps{
		Store:       s,
		Tokens:      jwtsvc.New("router-secret", time.Hour),
		Hub:         hub,
		StaticDir:   static,
		CORSOrigins: []string{"*"},
	})
	return &suite{router: router, store: s, rooms: rooms}
}

func (s *suite) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *suite) login(t *testing.T) string {
	t.Helper()
	w := s.do(http.MethodPost, "/login", `{"email":"a@b.com"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["token"]
}

func TestScenario_LoginWithoutEmail(t *testing.T) {
	s := setupSuite(t)

	w := s.do(http.MethodPost, "/login", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Email is required"}`, w.Body.String())
}

func TestScenario_ProtectedWithoutHeader(t *testing.T) {
	s := setupSuite(t)

	w := s.do(http.MethodGet, "/api/protected", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized Access"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/protected", "", s.login(t))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScenario_BookRoom(t *testing.T) {
	s := setupSuite(t)
	token := s.login(t)
	body := `{"name":"Jane","email":"jane@example.com","phone":"555","checkInDate":"2026-11-01","checkOutDate":"2026-11-03","roomType":"Suite"}`

	w := s.do(http.MethodPost, "/api/book-room", body, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, ok := domain.ParseID(resp["bookingId"])
	assert.True(t, ok)

	w = s.do(http.MethodPost, "/api/book-room", `{"name":"Jane","email":"jane@example.com","checkInDate":"2026-11-01","checkOutDate":"2026-11-03","roomType":"Suite"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScenario_ReviewRatingSix(t *testing.T) {
	s := setupSuite(t)
	body := fmt.Sprintf(`{"roomId":%q,"userId":%q,"username":"ann","rating":6,"comment":"x"}`, s.rooms[0].Hex(), domain.NewID().Hex())

	w := s.do(http.MethodPost, "/api/reviews", body, s.login(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Rating must be between 1 and 5!"}`, w.Body.String())
}

func TestScenario_InvalidRoomIDOnAPIPath(t *testing.T) {
	s := setupSuite(t)

	w := s.do(http.MethodGet, "/api/rooms/not-an-id", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid room ID"}`, w.Body.String())
}

func TestRoutes_PublicAliases(t *testing.T) {
	s := setupSuite(t)

	for _, path := range []string{"/rooms/" + s.rooms[1].Hex(), "/api/rooms/" + s.rooms[1].Hex()} {
		w := s.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	ids := fmt.Sprintf(`[%q, "bogus"]`, s.rooms[2].Hex())
	for _, path := range []string{"/roomsById", "/api/roomsById"} {
		w := s.do(http.MethodPost, path, ids, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := s.do(http.MethodGet, "/roomCount", "", "")
	assert.JSONEq(t, `{"totalRooms":3}`, w.Body.String())

	w = s.do(http.MethodGet, "/health", "", "")
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutes_StaticFallback(t *testing.T) {
	s := setupSuite(t)

	w := s.do(http.MethodGet, "/hello.txt", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())

	w = s.do(http.MethodPost, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
