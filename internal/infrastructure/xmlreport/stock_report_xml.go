// Package xmlreport exporta el reporte de stock como documento XML (etree).
//
//	<stockReport generatedAt="..." locale="es">
//	  <rows>
//	    <row productId="PROD001" locationId="LOC001" quantity="40">
//	      <productName>Laptop Computer</productName>
//	      <locationName>Main Warehouse</locationName>
//	    </row>
//	  </rows>
//	  <totals grandTotal="50">
//	    <product productId="PROD001" quantity="50">Laptop Computer</product>
//	  </totals>
//	</stockReport>
package xmlreport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
)

var _ analytics.StockReportRenderer = (*StockReportXML)(nil)

// StockReportXML implementa analytics.StockReportRenderer.
type StockReportXML struct {
	indent int
}

// NewStockReportXML construye el renderer. indent <= 0 produce XML compacto.
func NewStockReportXML(indent int) *StockReportXML {
	return &StockReportXML{indent: indent}
}

func (*StockReportXML) ContentType() string { return "application/xml" }

// Render serializa el documento.
func (r *StockReportXML) Render(_ context.Context, doc analytics.StockReportDocument) ([]byte, error) {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := xml.CreateElement("stockReport")
	root.CreateAttr("title", doc.Title)
	root.CreateAttr("generatedAt", doc.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("locale", doc.Locale)

	rows := root.CreateElement("rows")
	for _, s := range doc.Rows {
		row := rows.CreateElement("row")
		row.CreateAttr("productId", s.ProductID)
		row.CreateAttr("locationId", s.LocationID)
		row.CreateAttr("quantity", strconv.FormatInt(s.Quantity, 10))
		row.CreateElement("productName").SetText(s.ProductName)
		row.CreateElement("locationName").SetText(s.LocationName)
	}

	totals := root.CreateElement("totals")
	totals.CreateAttr("grandTotal", strconv.FormatInt(doc.GrandTotal, 10))
	for _, t := range doc.Totals {
		p := totals.CreateElement("product")
		p.CreateAttr("productId", t.ProductID)
		p.CreateAttr("quantity", strconv.FormatInt(t.Quantity, 10))
		p.SetText(t.ProductName)
	}

	if r.indent > 0 {
		xml.Indent(r.indent)
	}
	var out bytes.Buffer
	if _, err := xml.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlreport: serializar: %w", err)
	}
	return out.Bytes(), nil
}
