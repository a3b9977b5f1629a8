package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Bootstrap carga el estado persistido en el store. Los movimientos con movement_id repetido
// se renumeran y se persisten. Con seed=true cada colección vacía recibe los datos de
// demostración de SampleData y el resultado se persiste.
func Bootstrap(
	ctx context.Context,
	provider ports.SnapshotProvider,
	store ports.SnapshotStore,
	txRunner ports.TxRunner,
	seed bool,
	log *logger.Logger,
) error {
	snapshot, err := provider.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar snapshot: %w", err)
	}
	var reassigned int
	snapshot.Movements, reassigned = inventory.ReassignDuplicateIDs(snapshot.Movements)
	store.Restore(snapshot)
	if reassigned > 0 {
		log.Warn().Int("movements", reassigned).Msg("movement_id repetidos renumerados al cargar")
		noop := func(repository.ProductRepository, repository.LocationRepository, repository.MovementRepository) error { return nil }
		if err := txRunner.Run(ctx, noop); err != nil {
			return fmt.Errorf("persistir ids renumerados: %w", err)
		}
	}

	loaded := store.Snapshot()
	log.Info().
		Int("products", len(loaded.Products)).
		Int("locations", len(loaded.Locations)).
		Int("movements", len(loaded.Movements)).
		Msg("inventario cargado")

	if !seed || (len(loaded.Products) > 0 && len(loaded.Locations) > 0 && len(loaded.Movements) > 0) {
		return nil
	}

	sample := SampleData()
	err = txRunner.Run(ctx, func(
		products repository.ProductRepository,
		locations repository.LocationRepository,
		movements repository.MovementRepository,
	) error {
		if len(products.All()) == 0 {
			for _, p := range sample.Products {
				products.Upsert(p)
			}
		}
		if len(locations.All()) == 0 {
			for _, l := range sample.Locations {
				locations.Upsert(l)
			}
		}
		if len(movements.All()) == 0 {
			for _, m := range sample.Movements {
				movements.Upsert(m)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sembrar datos de ejemplo: %w", err)
	}
	log.Info().Msg("datos de ejemplo sembrados")
	return nil
}
