package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"roombooking/internal/cache"
	"roombooking/internal/config"
	"roombooking/internal/database"
	"roombooking/internal/modules/review"
	jwtsvc "roombooking/internal/pkg/jwt"
	"roombooking/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	docs, err := database.OpenStore(connectCtx, cfg)
	cancel()
	if err != nil {
		log.Fatal("store connection failed: ", err)
	}
	log.Printf("store connected driver=%s", cfg.StoreDriver)

	deps := server.Deps{
		Store:       docs,
		Tokens:      jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL),
		Hub:         review.NewHub(),
		StaticDir:   cfg.StaticDir,
		CORSOrigins: cfg.CORSOrigins,
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("redis unavailable, room count cache disabled: %v", err)
		} else {
			deps.RoomCounts = cache.NewRoomCount(rdb, cfg.RoomCountTTL)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening addr=%s env=%s", srv.Addr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	deps.Hub.Close()
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("redis close: %v", err)
		}
	}
	if err := docs.Close(shutdownCtx); err != nil {
		log.Printf("store close: %v", err)
	}
}
