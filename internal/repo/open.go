package repo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-memo-backend/internal/config"
)

// Open connects the configured store and verifies it is reachable. It must
// complete before the HTTP layer is built; there is no lazy connection.
func Open(ctx context.Context, cfg config.StoreConfig) (Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverMongo:
		d, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.Driver).Str("database", cfg.MongoDatabase).Msg("document store connected")
		return d, nil

	case config.DriverSQLite:
		db, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		d, err := NewSQLiteDriver(db)
		if err != nil {
			return nil, err
		}
		if err := d.Ping(ctx); err != nil {
			_ = d.Close(ctx)
			return nil, err
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.SQLitePath).Msg("document store connected")
		return d, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
