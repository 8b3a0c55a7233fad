package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"roombooking/internal/middleware"
	"roombooking/internal/modules/auth"
	"roombooking/internal/modules/booking"
	"roombooking/internal/modules/catalog"
	"roombooking/internal/modules/review"
	jwtsvc "roombooking/internal/pkg/jwt"
	"roombooking/internal/pkg/response"
	"roombooking/internal/store"
)

type Deps struct {
	Store       store.DocumentStore
	Tokens      *jwtsvc.Service
	RoomCounts  catalog.CountCache
	Hub         *review.Hub
	StaticDir   string
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	catalogHandler := catalog.NewHandler(catalog.NewService(d.Store, d.RoomCounts))
	bookingHandler := booking.NewHandler(booking.NewService(d.Store))
	authHandler := auth.NewHandler(d.Tokens)

	var publisher review.Publisher
	if d.Hub != nil {
		publisher = d.Hub
	}
	reviewHandler := review.NewHandler(review.NewService(d.Store, publisher))

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.ErrorLogger(), middleware.CORS(d.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// public
	catalogHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r, nil)

	api := r.Group("/api")
	{
		catalogHandler.RegisterRoutes(api)
		reviewHandler.RegisterRoutes(api, nil)
		if d.Hub != nil {
			review.NewFeedHandler(d.Hub).RegisterRoutes(api)
		}

		// protected
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(d.Tokens))
		{
			authHandler.RegisterRoutes(nil, protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(nil, protected)
		}
	}

	r.NoRoute(staticFallback(d.StaticDir))
	return r
}

// staticFallback serves files from dir for unmatched GET/HEAD requests.
func staticFallback(dir string) gin.HandlerFunc {
	var files http.Handler
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			files = http.FileServer(http.Dir(dir))
		}
	}

	return func(c *gin.Context) {
		if files != nil && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		response.Message(c, http.StatusNotFound, "Not found")
	}
}
