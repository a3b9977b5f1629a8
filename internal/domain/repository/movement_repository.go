package repository

import "github.com/jhoicas/inventory-tracker/internal/domain/entity"

// MovementRepository define el puerto del store para el log de movimientos.
// All no garantiza orden; quien necesite recencia debe ordenar explícitamente.
type MovementRepository interface {
	Upsert(movement entity.Movement)
	Remove(movementID int64) bool
	Find(movementID int64) (entity.Movement, bool)
	All() []entity.Movement

	// IsLocationReferenced indica si algún movimiento usa la ubicación como origen o destino.
	// Lo usa la eliminación de ubicaciones para rechazar las que tienen historial.
	IsLocationReferenced(locationID string) bool

	// MaxID devuelve el mayor movement_id registrado (0 si el log está vacío).
	MaxID() int64
}
