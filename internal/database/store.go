package database

import (
	"context"
	"fmt"

	"roombooking/internal/config"
	"roombooking/internal/store"
)

// OpenStore connects the document store selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config) (store.DocumentStore, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return store.NewMongoStore(client, cfg.MongoDatabase), nil

	case config.DriverSQL:
		db, err := Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s := store.NewSQLStore(db)
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("migrate documents: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
