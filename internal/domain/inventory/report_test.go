package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

var (
	testProducts = []entity.Product{
		{ProductID: "PROD001", Name: "Laptop Computer"},
		{ProductID: "PROD002", Name: "Office Chair"},
		{ProductID: "PROD003", Name: "Monitor Display"},
	}
	testLocations = []entity.Location{
		{LocationID: "LOC001", Name: "Main Warehouse"},
		{LocationID: "LOC002", Name: "Store Front"},
	}
	t0 = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
)

func at(m entity.Movement, id int64, offset time.Duration) entity.Movement {
	m.MovementID = id
	m.Timestamp = t0.Add(offset)
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Actividad reciente
// ──────────────────────────────────────────────────────────────────────────────

func TestRecentActivity_OrdenYDescripciones(t *testing.T) {
	log := []entity.Movement{
		at(mov("PROD001", "", "LOC001", 50), 1, 0),
		at(mov("PROD002", "", "LOC001", 25), 2, time.Hour),
		at(mov("PROD001", "LOC001", "LOC002", 10), 3, 2*time.Hour),
		at(mov("PROD001", "LOC002", "", 3), 4, 3*time.Hour),
	}
	rows := inventory.RecentActivity(log, inventory.NewCatalog(testProducts, testLocations), 5)
	require.Len(t, rows, 4)

	assert.Equal(t, int64(4), rows[0].MovementID, "el más reciente primero")
	assert.Equal(t, "removed from Store Front", rows[0].Action)
	assert.Equal(t, "Laptop Computer removed from Store Front (Qty: 3)", rows[0].Description)

	assert.Equal(t, entity.MovementKindTRANSFER, rows[1].Kind)
	assert.Equal(t, "moved from Main Warehouse to Store Front", rows[1].Action)

	assert.Equal(t, "Office Chair", rows[2].ProductName)
	assert.Equal(t, "added to Main Warehouse", rows[2].Action)
	assert.Equal(t, int64(25), rows[2].Qty)
}

func TestRecentActivity_LimiteYDefault(t *testing.T) {
	var log []entity.Movement
	for i := 0; i < 12; i++ {
		log = append(log, at(mov("PROD001", "", "LOC001", 1), int64(i+1), time.Duration(i)*time.Minute))
	}
	catalog := inventory.NewCatalog(testProducts, testLocations)

	rows := inventory.RecentActivity(log, catalog, 0)
	require.Len(t, rows, inventory.DefaultRecentActivityLimit)
	assert.Equal(t, int64(12), rows[0].MovementID)
	assert.Equal(t, int64(8), rows[4].MovementID)

	assert.Len(t, inventory.RecentActivity(log, catalog, 3), 3)
	assert.Empty(t, inventory.RecentActivity(nil, catalog, 5))
}

func TestRecentActivity_ReferenciasColgantesUsanIdentidad(t *testing.T) {
	log := []entity.Movement{at(mov("GHOST", "LOC001", "NOWHERE", 2), 1, 0)}
	rows := inventory.RecentActivity(log, inventory.NewCatalog(testProducts, testLocations), 5)
	require.Len(t, rows, 1)
	assert.Equal(t, "GHOST", rows[0].ProductName)
	assert.Equal(t, "moved from Main Warehouse to NOWHERE", rows[0].Action)
}

func TestRecentActivity_NoModificaElLog(t *testing.T) {
	log := []entity.Movement{
		at(mov("PROD001", "", "LOC001", 1), 1, 0),
		at(mov("PROD001", "", "LOC001", 1), 2, time.Hour),
	}
	_ = inventory.RecentActivity(log, inventory.Catalog{}, 5)
	assert.Equal(t, int64(1), log[0].MovementID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de stock por ubicación
// ──────────────────────────────────────────────────────────────────────────────

func TestStockReport_FiltraYOrdena(t *testing.T) {
	log := []entity.Movement{
		mov("PROD003", "", "LOC002", 15),
		mov("PROD001", "", "LOC001", 50),
		mov("PROD001", "LOC001", "LOC002", 10),
		mov("PROD002", "", "LOC001", 25),
		mov("PROD002", "LOC001", "", 25), // queda en cero: no aparece
		mov("PROD001", "LOC002", "", 12), // LOC002 queda en -2: no aparece
	}
	rows := inventory.StockReport(log, inventory.NewCatalog(testProducts, testLocations), language.English)

	require.Len(t, rows, 2)
	assert.Equal(t, inventory.StockRow{
		ProductID: "PROD001", ProductName: "Laptop Computer",
		LocationID: "LOC001", LocationName: "Main Warehouse", Quantity: 40,
	}, rows[0])
	assert.Equal(t, "Monitor Display", rows[1].ProductName)
	assert.Equal(t, int64(15), rows[1].Quantity)
}

func TestStockReport_OrdenSensibleAlIdioma(t *testing.T) {
	products := []entity.Product{
		{ProductID: "A", Name: "zapato"},
		{ProductID: "B", Name: "Árbol"},
		{ProductID: "C", Name: "banco"},
	}
	log := []entity.Movement{mov("A", "", "L", 1), mov("B", "", "L", 1), mov("C", "", "L", 1)}
	rows := inventory.StockReport(log, inventory.NewCatalog(products, nil), language.Spanish)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Árbol", "banco", "zapato"},
		[]string{rows[0].ProductName, rows[1].ProductName, rows[2].ProductName},
		"la comparación ignora mayúsculas y acentos como localeCompare")
	assert.Equal(t, "L", rows[0].LocationName, "ubicación inexistente cae en su identidad")
}

func TestProperty_ReporteNuncaTieneSaldosNoPositivos(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		for _, row := range inventory.StockReport(randomLog(r, r.Intn(50)), inventory.Catalog{}, language.Spanish) {
			assert.Greater(t, row.Quantity, int64(0))
		}
	}
}

func TestProductTotals(t *testing.T) {
	log := []entity.Movement{
		mov("PROD002", "", "LOC001", 5),
		mov("PROD001", "", "LOC001", 9),
		mov("PROD001", "LOC001", "", 10),
	}
	rows := inventory.ProductTotals(log, inventory.NewCatalog(testProducts, testLocations), language.English)
	require.Len(t, rows, 2)
	assert.Equal(t, inventory.ProductTotalRow{ProductID: "PROD001", ProductName: "Laptop Computer", Quantity: -1}, rows[0])
	assert.Equal(t, "Office Chair", rows[1].ProductName)
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.Spanish, inventory.ParseLocale("no es un tag!"))
	assert.Equal(t, language.MustParse("en-US"), inventory.ParseLocale("en-US"))
}
