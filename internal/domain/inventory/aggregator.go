package inventory

import "github.com/jhoicas/inventory-tracker/internal/domain/entity"

// StockKey identifica el saldo de un producto en una ubicación.
type StockKey struct {
	ProductID  string
	LocationID string
}

// AggregateByProduct recorre el log completo y devuelve el stock total por producto:
// suma qty si el movimiento tiene destino y resta qty si tiene origen.
// Un traslado (origen y destino) deja el total del producto igual.
// Los saldos pueden quedar negativos; solo TotalStock los recorta.
func AggregateByProduct(movements []entity.Movement) map[string]int64 {
	totals := make(map[string]int64)
	for _, m := range movements {
		if _, ok := totals[m.ProductID]; !ok {
			totals[m.ProductID] = 0
		}
		if m.ToLocation != "" {
			totals[m.ProductID] += m.Qty
		}
		if m.FromLocation != "" {
			totals[m.ProductID] -= m.Qty
		}
	}
	return totals
}

// AggregateByProductLocation devuelve el saldo por (producto, ubicación):
// +qty en (producto, destino) y -qty en (producto, origen).
// Incluye saldos cero y negativos; el filtrado corresponde al reporte.
func AggregateByProductLocation(movements []entity.Movement) map[StockKey]int64 {
	balances := make(map[StockKey]int64)
	for _, m := range movements {
		if m.ToLocation != "" {
			balances[StockKey{ProductID: m.ProductID, LocationID: m.ToLocation}] += m.Qty
		}
		if m.FromLocation != "" {
			balances[StockKey{ProductID: m.ProductID, LocationID: m.FromLocation}] -= m.Qty
		}
	}
	return balances
}

// TotalStock suma los totales por producto recortando cada uno en cero,
// de modo que un producto sobre-descontado nunca resta del total mostrado.
func TotalStock(byProduct map[string]int64) int64 {
	var total int64
	for _, qty := range byProduct {
		if qty > 0 {
			total += qty
		}
	}
	return total
}

// PositiveBalances descarta los saldos cero o negativos.
func PositiveBalances(balances map[StockKey]int64) map[StockKey]int64 {
	out := make(map[StockKey]int64, len(balances))
	for k, qty := range balances {
		if qty > 0 {
			out[k] = qty
		}
	}
	return out
}
