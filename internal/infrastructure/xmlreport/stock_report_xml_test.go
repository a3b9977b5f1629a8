package xmlreport_test

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/xmlreport"
)

func TestStockReportXML_RenderYReparse(t *testing.T) {
	doc := analytics.StockReportDocument{
		Title:       "Stock por ubicación",
		GeneratedAt: time.Date(2024, 1, 17, 9, 15, 0, 0, time.UTC),
		Locale:      "es",
		Rows: []inventory.StockRow{
			{ProductID: "P1", ProductName: "Árbol & Cía <s.a.>", LocationID: "L1", LocationName: "Bodega", Quantity: 40},
			{ProductID: "P1", ProductName: "Árbol & Cía <s.a.>", LocationID: "L2", LocationName: "Tienda", Quantity: 10},
		},
		Totals:     []inventory.ProductTotalRow{{ProductID: "P1", ProductName: "Árbol & Cía <s.a.>", Quantity: 50}},
		GrandTotal: 50,
	}

	out, err := xmlreport.NewStockReportXML(2).Render(context.Background(), doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))
	root := parsed.SelectElement("stockReport")
	require.NotNil(t, root)
	assert.Equal(t, "2024-01-17T09:15:00Z", root.SelectAttrValue("generatedAt", ""))
	assert.Equal(t, "es", root.SelectAttrValue("locale", ""))

	rows := root.FindElements("./rows/row")
	require.Len(t, rows, 2)
	assert.Equal(t, "L2", rows[1].SelectAttrValue("locationId", ""))
	assert.Equal(t, "10", rows[1].SelectAttrValue("quantity", ""))
	assert.Equal(t, "Árbol & Cía <s.a.>", rows[0].SelectElement("productName").Text(), "texto escapado y recuperado")

	totals := root.SelectElement("totals")
	assert.Equal(t, "50", totals.SelectAttrValue("grandTotal", ""))
	assert.Len(t, totals.SelectElements("product"), 1)
}

func TestStockReportXML_Vacio(t *testing.T) {
	renderer := xmlreport.NewStockReportXML(0)
	out, err := renderer.Render(context.Background(), analytics.StockReportDocument{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<rows/>")
	assert.Equal(t, "application/xml", renderer.ContentType())
}
