// Package app arma el grafo de dependencias compartido por la API y la CLI.
package app

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventory-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/storage"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/xmlreport"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Container store cargado y casos de uso listos para usar.
type Container struct {
	Store            *memory.Store
	TxRunner         *memory.TxRunner
	ProductUC        *usecase.ProductUseCase
	LocationUC       *usecase.LocationUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementUC       *inventory.MovementUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *analytics.ReportUseCase

	closeFn func()
}

// New abre el almacenamiento configurado, carga el snapshot en memoria (sembrando datos de
// ejemplo si seed es true) y construye los casos de uso.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, seed bool) (*Container, error) {
	provider, closeFn, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore()
	txRunner := memory.NewTxRunner(store, provider)
	if err := inventory.Bootstrap(ctx, provider, store, txRunner, seed, log.Named("bootstrap")); err != nil {
		closeFn()
		return nil, err
	}

	renderers := map[string]analytics.StockReportRenderer{
		analytics.FormatPDF: infrapdf.NewStockReportPDF(),
		analytics.FormatXML: xmlreport.NewStockReportXML(2),
	}

	return &Container{
		Store:      store,
		TxRunner:   txRunner,
		ProductUC:  usecase.NewProductUseCase(store.Products(), txRunner),
		LocationUC: usecase.NewLocationUseCase(store.Locations(), txRunner),
		RegisterMovement: inventory.NewRegisterMovementUseCase(
			txRunner, store.Products(), store.Locations(), store.Movements(),
			log.Named("movements"),
			inventory.WithStrictReferences(cfg.Inventory.StrictReferences),
		),
		MovementUC:  inventory.NewMovementUseCase(txRunner, store.Products(), store.Locations(), store.Movements()),
		DashboardUC: analytics.NewDashboardUseCase(store, cfg.Inventory.RecentActivityLimit),
		ReportUC:    analytics.NewReportUseCase(store, cfg.Inventory.ReportLocale, renderers),
		closeFn:     closeFn,
	}, nil
}

// Close libera las conexiones del almacenamiento.
func (c *Container) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}
