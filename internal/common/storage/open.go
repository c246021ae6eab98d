package storage

import (
	"context"
	"fmt"

	"college-portal/internal/common/config"
	"college-portal/internal/common/database"
	"college-portal/internal/common/logger"
)

// Backend is a Storage opened from configuration. It owns the underlying
// connection and can be pinged by readiness checks.
type Backend struct {
	Storage
	driver  string
	ping    func(ctx context.Context) error
	closeFn func() error
}

func (b *Backend) Driver() string { return b.driver }

// Ping reports whether the backend is reachable. Local drivers always are.
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	return b.ping(ctx)
}

func (b *Backend) Close() error {
	_ = b.Storage.Close()
	if b.closeFn != nil {
		return b.closeFn()
	}
	return nil
}

// Open builds the storage backend named by cfg.Storage.Driver. The postgres
// driver creates its table and so needs the server up; redis is lazy.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Backend, error) {
	log = log.WithFields(map[string]interface{}{
		"component": "storage",
		"driver":    cfg.Storage.Driver,
	})

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Info("using in-memory storage", nil)
		return &Backend{Storage: NewMemoryStorage(0), driver: cfg.Storage.Driver}, nil

	case config.StorageDriverFile:
		fs, err := NewFileStorage(cfg.Storage.FilePath, 0)
		if err != nil {
			return nil, err
		}
		log.Info("using file storage", map[string]interface{}{"path": cfg.Storage.FilePath})
		return &Backend{Storage: fs, driver: cfg.Storage.Driver}, nil

	case config.StorageDriverRedis:
		rc := database.NewRedis(cfg.Database.Redis)
		log.Info("using redis storage", map[string]interface{}{
			"address":   cfg.Database.Redis.Address,
			"keyPrefix": cfg.Storage.KeyPrefix,
		})
		return &Backend{
			Storage: NewRedisStorage(rc.Client, cfg.Storage.KeyPrefix),
			driver:  cfg.Storage.Driver,
			ping:    rc.Ping,
			closeFn: rc.Close,
		}, nil

	case config.StorageDriverPostgres:
		pc, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		ps, err := NewPostgresStorage(pc.DB, cfg.Storage.Table)
		if err != nil {
			pc.Close()
			return nil, err
		}
		if err := ps.EnsureSchema(ctx); err != nil {
			pc.Close()
			return nil, err
		}
		log.Info("using postgres storage", map[string]interface{}{
			"host":  cfg.Database.Postgres.Host,
			"table": cfg.Storage.Table,
		})
		return &Backend{Storage: ps, driver: cfg.Storage.Driver, ping: pc.Ping, closeFn: pc.Close}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
