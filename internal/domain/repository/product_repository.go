package repository

import "github.com/jhoicas/inventory-tracker/internal/domain/entity"

// ProductRepository define el puerto del store para Product (DIP).
// Upsert reemplaza el registro completo; Remove es idempotente y devuelve si existía.
// All respeta el orden de inserción.
type ProductRepository interface {
	Upsert(product entity.Product)
	Remove(productID string) bool
	Find(productID string) (entity.Product, bool)
	All() []entity.Product
}
