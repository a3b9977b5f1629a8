package postgres

import (
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

var (
	productColumns  = []string{"product_id", "name", "description", "position"}
	locationColumns = []string{"location_id", "name", "address", "position"}
	movementColumns = []string{"movement_id", "moved_at", "product_id", "from_location", "to_location", "qty", "position"}
)

// productRows convierte los productos en filas para COPY, en el orden de productColumns.
func productRows(products []entity.Product) [][]any {
	rows := make([][]any, 0, len(products))
	for i, p := range products {
		rows = append(rows, []any{p.ProductID, p.Name, p.Description, i})
	}
	return rows
}

func locationRows(locations []entity.Location) [][]any {
	rows := make([][]any, 0, len(locations))
	for i, l := range locations {
		rows = append(rows, []any{l.LocationID, l.Name, l.Address, i})
	}
	return rows
}

func movementRows(movements []entity.Movement) [][]any {
	rows := make([][]any, 0, len(movements))
	for i, m := range movements {
		rows = append(rows, []any{
			m.MovementID, m.Timestamp.UTC(), m.ProductID, m.FromLocation, m.ToLocation, m.Qty, i,
		})
	}
	return rows
}

// normalizeTimestamp devuelve el instante en UTC con precisión de milisegundos.
func normalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
