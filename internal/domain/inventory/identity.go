package inventory

import "github.com/jhoicas/inventory-tracker/internal/domain/entity"

// ReassignDuplicateIDs devuelve una copia del log donde cada movement_id repetido recibe
// max+1 (en orden de aparición) y la cantidad de movimientos renumerados.
// La primera aparición de cada id lo conserva. Ids de milisegundos generados por dos
// registros en el mismo instante no deben fusionarse en uno.
func ReassignDuplicateIDs(movements []entity.Movement) ([]entity.Movement, int) {
	var maxID int64
	for _, m := range movements {
		maxID = max(maxID, m.MovementID)
	}
	seen := make(map[int64]struct{}, len(movements))
	out := make([]entity.Movement, len(movements))
	reassigned := 0
	for i, m := range movements {
		if _, dup := seen[m.MovementID]; dup {
			maxID++
			m.MovementID = maxID
			reassigned++
		}
		seen[m.MovementID] = struct{}{}
		out[i] = m
	}
	return out, reassigned
}
