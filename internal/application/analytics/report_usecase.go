package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

// Formatos de exportación del reporte de stock.
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatXML  = "xml"
)

// ErrUnsupportedFormat el formato pedido no tiene renderer configurado.
var ErrUnsupportedFormat = errors.New("formato de reporte no soportado")

// ReportUseCase proyecta el reporte de stock por ubicación y los totales por producto.
type ReportUseCase struct {
	store     ports.SnapshotReader
	locale    language.Tag
	renderers map[string]StockReportRenderer
	clock     func() time.Time
}

// NewReportUseCase construye el caso de uso. locale es una etiqueta BCP 47 para ordenar por nombre.
func NewReportUseCase(store ports.SnapshotReader, locale string, renderers map[string]StockReportRenderer) *ReportUseCase {
	if renderers == nil {
		renderers = map[string]StockReportRenderer{}
	}
	return &ReportUseCase{
		store:     store,
		locale:    inventory.ParseLocale(locale),
		renderers: renderers,
		clock:     time.Now,
	}
}

// StockReport filas (producto, ubicación, cantidad) con saldo positivo, ordenadas por nombre de producto.
func (uc *ReportUseCase) StockReport() *dto.StockReportResponse {
	doc := uc.document()
	items := make([]dto.StockRowDTO, 0, len(doc.Rows))
	for _, r := range doc.Rows {
		items = append(items, dto.StockRowDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			LocationID:   r.LocationID,
			LocationName: r.LocationName,
			Quantity:     r.Quantity,
		})
	}
	return &dto.StockReportResponse{Items: items, Locale: doc.Locale, GeneratedAt: doc.GeneratedAt}
}

// ProductTotals stock por producto en todas las ubicaciones y el total general acotado en cero.
func (uc *ReportUseCase) ProductTotals() *dto.ProductTotalsResponse {
	doc := uc.document()
	items := make([]dto.ProductTotalDTO, 0, len(doc.Totals))
	for _, r := range doc.Totals {
		items = append(items, dto.ProductTotalDTO{ProductID: r.ProductID, ProductName: r.ProductName, Quantity: r.Quantity})
	}
	return &dto.ProductTotalsResponse{Items: items, GrandTotal: doc.GrandTotal}
}

// Export renderiza el reporte en el formato pedido y devuelve bytes y content type.
func (uc *ReportUseCase) Export(ctx context.Context, format string) ([]byte, string, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	out, err := renderer.Render(ctx, uc.document())
	if err != nil {
		return nil, "", fmt.Errorf("render %s: %w", format, err)
	}
	return out, renderer.ContentType(), nil
}

func (uc *ReportUseCase) document() StockReportDocument {
	snap := uc.store.Snapshot()
	catalog := inventory.NewCatalog(snap.Products, snap.Locations)
	totals := inventory.AggregateByProduct(snap.Movements)
	return StockReportDocument{
		Title:       "Stock por ubicación",
		GeneratedAt: uc.clock().UTC().Truncate(time.Second),
		Locale:      uc.locale.String(),
		Rows:        inventory.StockReport(snap.Movements, catalog, uc.locale),
		Totals:      inventory.ProductTotals(snap.Movements, catalog, uc.locale),
		GrandTotal:  inventory.TotalStock(totals),
	}
}
