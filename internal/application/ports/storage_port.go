package ports

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// SnapshotProvider define el puerto de salida hacia la persistencia externa.
// Cualquier adaptador (redis, PostgreSQL, memoria) debe implementar esta interfaz.
// El único contrato es la fidelidad del round-trip, incluidos los timestamps de los movimientos.
type SnapshotProvider interface {
	// Load devuelve el estado persistido; un store vacío devuelve un Snapshot vacío, no error.
	Load(ctx context.Context) (*entity.Snapshot, error)
	// Save reemplaza el estado persistido por el snapshot completo.
	Save(ctx context.Context, snapshot *entity.Snapshot) error
}

// TxRunner ejecuta una mutación del store con el lock de escritura tomado y persiste
// el resultado (un Save por mutación). Si fn o el Save fallan, el store vuelve al estado previo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// SnapshotReader entrega una copia consistente de las tres colecciones para lectura.
type SnapshotReader interface {
	Snapshot() *entity.Snapshot
}

// SnapshotStore store en memoria que además admite reemplazar todo su contenido (arranque).
type SnapshotStore interface {
	SnapshotReader
	Restore(snapshot *entity.Snapshot)
}
