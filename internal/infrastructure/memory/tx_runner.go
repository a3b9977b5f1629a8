package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// Ensure TxRunner implements ports.TxRunner.
var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las mutaciones del Store y persiste el estado después de cada una.
type TxRunner struct {
	store    *Store
	provider ports.SnapshotProvider
}

// NewTxRunner construye el runner. provider puede ser nil (sin persistencia).
func NewTxRunner(store *Store, provider ports.SnapshotProvider) *TxRunner {
	return &TxRunner{store: store, provider: provider}
}

// Run toma el lock de escritura, ejecuta fn con repos atados al lock y hace Save del snapshot.
// Si fn o Save fallan se restaura el estado previo (equivalente a Rollback). Un panic en fn
// también restaura el estado antes de propagarse.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.snapshotLocked()
	defer func() {
		if p := recover(); p != nil {
			s.restoreLocked(before)
			panic(p)
		}
	}()
	if err := fn(productRepo{s: s, inTx: true}, locationRepo{s: s, inTx: true}, movementRepo{s: s, inTx: true}); err != nil {
		s.restoreLocked(before)
		return err
	}
	if r.provider == nil {
		return nil
	}
	if err := r.provider.Save(ctx, s.snapshotLocked()); err != nil {
		s.restoreLocked(before)
		return fmt.Errorf("persistir snapshot: %w", err)
	}
	return nil
}
