package repository

import "github.com/jhoicas/inventory-tracker/internal/domain/entity"

// LocationRepository define el puerto del store para ubicaciones.
type LocationRepository interface {
	Upsert(location entity.Location)
	Remove(locationID string) bool
	Find(locationID string) (entity.Location, bool)
	All() []entity.Location
}
