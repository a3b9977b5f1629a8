// Package storage selecciona el proveedor de persistencia del snapshot según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/kv"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Open construye el SnapshotProvider del driver configurado. La función devuelta libera las conexiones
// abiertas; si no hay error nunca es nil.
//
//   - memory: clave-valor en proceso, el estado se pierde al salir.
//   - redis: tres claves JSON con el prefijo configurado.
//   - postgres: tres tablas; el esquema se crea si no existe.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (ports.SnapshotProvider, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		log.Warn().Msg("almacenamiento en memoria: los datos no sobreviven al reinicio")
		return kv.NewSnapshotProvider(kv.NewMapStore(), cfg.Redis.KeyPrefix), func() {}, nil

	case config.StorageRedis:
		client, err := kv.NewRedisClient(ctx, kv.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Str("prefix", cfg.Redis.KeyPrefix).Msg("almacenamiento redis")
		return kv.NewSnapshotProvider(kv.NewRedisStore(client), cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("host", cfg.DB.Host).Str("db", cfg.DB.DBName).Msg("almacenamiento postgres")
		return postgres.NewSnapshotProvider(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
}
