package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

// StockReportDocument datos ya proyectados para renderizar el reporte de stock.
type StockReportDocument struct {
	Title       string
	GeneratedAt time.Time
	Locale      string
	Rows        []inventory.StockRow
	Totals      []inventory.ProductTotalRow
	GrandTotal  int64
}

// StockReportRenderer puerto de salida hacia un formato de documento (PDF, XML).
type StockReportRenderer interface {
	Render(ctx context.Context, doc StockReportDocument) ([]byte, error)
	ContentType() string
}
