// Package pdf renderiza el reporte de stock por ubicación en PDF (A4) con Maroto v2.
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título               │  fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Ubicación | Cantidad                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES POR PRODUCTO + STOCK TOTAL                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.StockReportRenderer = (*StockReportPDF)(nil)

// StockReportPDF implementa analytics.StockReportRenderer usando Maroto v2.
type StockReportPDF struct{}

// NewStockReportPDF construye el renderer.
func NewStockReportPDF() *StockReportPDF { return &StockReportPDF{} }

func (*StockReportPDF) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (*StockReportPDF) Render(_ context.Context, doc analytics.StockReportDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow("Producto", "Ubicación", "Cantidad"))
	if len(doc.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin existencias registradas.", props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(stockRows(doc.Rows)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow("Producto", "", "Total"))
	m.AddRows(totalRows(doc.Totals)...)
	m.AddRows(grandTotalRow(doc.GrandTotal))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func headerRow(doc analytics.StockReportDocument) core.Row {
	return row.New(16).Add(
		col.New(8).Add(text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(
			text.New("Generado: "+doc.GeneratedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Orden: "+doc.Locale, props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(product, location, qty string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h(product, 6, align.Left),
		h(location, 4, align.Left),
		h(qty, 2, align.Right),
	)
}

func stockRows(rows []inventory.StockRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(r.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(r.LocationName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(formatThousands(r.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return result
}

func totalRows(rows []inventory.ProductTotalRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(10).Add(text.New(r.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(formatThousands(r.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return result
}

func grandTotalRow(total int64) core.Row {
	return row.New(10).Add(
		col.New(10).Add(text.New("STOCK TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(formatThousands(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
