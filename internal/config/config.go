package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo = "mongo"
	DriverSQL   = "sql"
)

const (
	defaultPort          = "8000"
	defaultJWTTTL        = "1h"
	defaultStoreDriver   = DriverMongo
	defaultMongoDatabase = "rooms"
	defaultMongoHost     = "cluster0.wuksj.mongodb.net"
	defaultDatabaseURL   = "rooms.db"
	defaultRoomCountTTL  = "30s"
	defaultStaticDir     = "public"
	defaultCORSOrigins   = "*"
)

type Config struct {
	AppEnv        string
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
	RedisURL      string
	RoomCountTTL  time.Duration
	StaticDir     string
	CORSOrigins   []string
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", defaultStoreDriver)))
	cfg.MongoURI = strings.TrimSpace(os.Getenv("MONGODB_URI"))
	if cfg.MongoURI == "" {
		cfg.MongoURI = mongoURIFromParts(os.Getenv("DB_USER"), os.Getenv("DB_PASS"), getEnv("DB_HOST", defaultMongoHost))
	}
	cfg.MongoDatabase = strings.TrimSpace(getEnv("MONGODB_DATABASE", defaultMongoDatabase))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.StaticDir = strings.TrimSpace(getEnv("STATIC_DIR", defaultStaticDir))
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.RoomCountTTL, err = parseDurationEnv("ROOM_COUNT_TTL", defaultRoomCountTTL)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is empty: token issuing and verification will fail")
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.RoomCountTTL <= 0 {
		return fmt.Errorf("ROOM_COUNT_TTL must be > 0")
	}
	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI or DB_USER/DB_PASS must be set for STORE_DRIVER=mongo")
		}
	case DriverSQL:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must not be empty for STORE_DRIVER=sql")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: mongo, sql")
	}

	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == "" {
		return fmt.Errorf("in prod/release JWT_SECRET must be set")
	}

	return nil
}

func mongoURIFromParts(user, pass, host string) string {
	user, pass, host = strings.TrimSpace(user), strings.TrimSpace(pass), strings.TrimSpace(host)
	if user == "" || pass == "" || host == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.UserPassword(user, pass).String(), host)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
