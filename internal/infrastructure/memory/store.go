// Package memory implementa el Entity Store en memoria: dueño exclusivo de productos,
// ubicaciones y movimientos. Un único RWMutex protege las tres colecciones; las mutaciones
// coordinadas (con persistencia) pasan por TxRunner.
package memory

import (
	"sync"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = productRepo{}
	_ repository.LocationRepository = locationRepo{}
	_ repository.MovementRepository = movementRepo{}
	_ ports.SnapshotStore           = (*Store)(nil)
)

// Store guarda las tres colecciones del inventario.
type Store struct {
	mu        sync.RWMutex
	products  *collection[string, entity.Product]
	locations *collection[string, entity.Location]
	movements *collection[int64, entity.Movement]
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		products:  newCollection(entity.Product.Identity),
		locations: newCollection(entity.Location.Identity),
		movements: newCollection(func(m entity.Movement) int64 { return m.MovementID }),
	}
}

// Products devuelve el repositorio de productos (cada llamada toma el lock).
func (s *Store) Products() repository.ProductRepository { return productRepo{s: s} }

// Locations devuelve el repositorio de ubicaciones.
func (s *Store) Locations() repository.LocationRepository { return locationRepo{s: s} }

// Movements devuelve el repositorio de movimientos.
func (s *Store) Movements() repository.MovementRepository { return movementRepo{s: s} }

// Snapshot copia consistente de las tres colecciones.
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Restore reemplaza todo el contenido por el del snapshot (usado al cargar desde persistencia).
// Productos y ubicaciones repetidos se resuelven como upsert (gana el último); los movimientos
// con movement_id repetido se renumeran con max+1 para no perder ninguno.
func (s *Store) Restore(snapshot *entity.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked(snapshot)
}

func (s *Store) snapshotLocked() *entity.Snapshot {
	return &entity.Snapshot{
		Products:  s.products.all(),
		Locations: s.locations.all(),
		Movements: s.movements.all(),
	}
}

func (s *Store) restoreLocked(snapshot *entity.Snapshot) {
	if snapshot == nil {
		snapshot = &entity.Snapshot{}
	}
	s.products.reset(snapshot.Products)
	s.locations.reset(snapshot.Locations)
	movements, _ := inventory.ReassignDuplicateIDs(snapshot.Movements)
	s.movements.reset(movements)
}

// lock/unlock condicionales: dentro de TxRunner el lock ya está tomado.

func (s *Store) rlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) wlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ── Productos ─────────────────────────────────────────────────────────────────

type productRepo struct {
	s    *Store
	inTx bool
}

func (r productRepo) Upsert(p entity.Product) {
	defer r.s.wlock(r.inTx)()
	r.s.products.upsert(p)
}

func (r productRepo) Remove(id string) bool {
	defer r.s.wlock(r.inTx)()
	return r.s.products.remove(id)
}

func (r productRepo) Find(id string) (entity.Product, bool) {
	defer r.s.rlock(r.inTx)()
	return r.s.products.find(id)
}

func (r productRepo) All() []entity.Product {
	defer r.s.rlock(r.inTx)()
	return r.s.products.all()
}

// ── Ubicaciones ───────────────────────────────────────────────────────────────

type locationRepo struct {
	s    *Store
	inTx bool
}

func (r locationRepo) Upsert(l entity.Location) {
	defer r.s.wlock(r.inTx)()
	r.s.locations.upsert(l)
}

func (r locationRepo) Remove(id string) bool {
	defer r.s.wlock(r.inTx)()
	return r.s.locations.remove(id)
}

func (r locationRepo) Find(id string) (entity.Location, bool) {
	defer r.s.rlock(r.inTx)()
	return r.s.locations.find(id)
}

func (r locationRepo) All() []entity.Location {
	defer r.s.rlock(r.inTx)()
	return r.s.locations.all()
}

// ── Movimientos ───────────────────────────────────────────────────────────────

type movementRepo struct {
	s    *Store
	inTx bool
}

func (r movementRepo) Upsert(m entity.Movement) {
	defer r.s.wlock(r.inTx)()
	r.s.movements.upsert(m)
}

func (r movementRepo) Remove(id int64) bool {
	defer r.s.wlock(r.inTx)()
	return r.s.movements.remove(id)
}

func (r movementRepo) Find(id int64) (entity.Movement, bool) {
	defer r.s.rlock(r.inTx)()
	return r.s.movements.find(id)
}

func (r movementRepo) All() []entity.Movement {
	defer r.s.rlock(r.inTx)()
	return r.s.movements.all()
}

func (r movementRepo) IsLocationReferenced(locationID string) bool {
	defer r.s.rlock(r.inTx)()
	for _, m := range r.s.movements.items {
		if m.References(locationID) {
			return true
		}
	}
	return false
}

func (r movementRepo) MaxID() int64 {
	defer r.s.rlock(r.inTx)()
	var maxID int64
	for _, m := range r.s.movements.items {
		if m.MovementID > maxID {
			maxID = m.MovementID
		}
	}
	return maxID
}
