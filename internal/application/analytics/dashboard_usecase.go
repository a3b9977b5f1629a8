// Package analytics contiene las proyecciones de solo lectura sobre el libro de movimientos:
// el resumen del dashboard y los reportes de stock.
package analytics

import (
	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

// DashboardUseCase genera los contadores y la actividad reciente.
//
// Trabaja sobre un único snapshot del store, así que contadores, total y actividad
// corresponden siempre al mismo estado.
type DashboardUseCase struct {
	store ports.SnapshotReader
	limit int
}

// NewDashboardUseCase construye el caso de uso. limit <= 0 usa inventory.DefaultRecentActivityLimit.
func NewDashboardUseCase(store ports.SnapshotReader, limit int) *DashboardUseCase {
	if limit <= 0 {
		limit = inventory.DefaultRecentActivityLimit
	}
	return &DashboardUseCase{store: store, limit: limit}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	snap := uc.store.Snapshot()
	catalog := inventory.NewCatalog(snap.Products, snap.Locations)

	activity := inventory.RecentActivity(snap.Movements, catalog, uc.limit)
	recent := make([]dto.ActivityDTO, 0, len(activity))
	for _, a := range activity {
		recent = append(recent, dto.ActivityDTO{
			MovementID:  a.MovementID,
			Timestamp:   a.Timestamp,
			Kind:        a.Kind,
			ProductID:   a.ProductID,
			ProductName: a.ProductName,
			Action:      a.Action,
			Description: a.Description,
			Qty:         a.Qty,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:  len(snap.Products),
		TotalLocations: len(snap.Locations),
		TotalMovements: len(snap.Movements),
		TotalStock:     inventory.TotalStock(inventory.AggregateByProduct(snap.Movements)),
		RecentActivity: recent,
	}
}
