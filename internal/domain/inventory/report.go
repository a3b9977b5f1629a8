package inventory

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// DefaultRecentActivityLimit cantidad de movimientos del feed de actividad reciente.
const DefaultRecentActivityLimit = 5

// Catalog resuelve identidades a nombres a mostrar. Si la entidad ya no existe
// se devuelve la identidad tal cual (las referencias colgantes nunca fallan).
type Catalog struct {
	products  map[string]entity.Product
	locations map[string]entity.Location
}

// NewCatalog indexa productos y ubicaciones; ante ids repetidos gana el primero.
func NewCatalog(products []entity.Product, locations []entity.Location) Catalog {
	c := Catalog{
		products:  make(map[string]entity.Product, len(products)),
		locations: make(map[string]entity.Location, len(locations)),
	}
	for _, p := range products {
		if _, ok := c.products[p.ProductID]; !ok {
			c.products[p.ProductID] = p
		}
	}
	for _, l := range locations {
		if _, ok := c.locations[l.LocationID]; !ok {
			c.locations[l.LocationID] = l
		}
	}
	return c
}

// ProductName nombre del producto o su identidad si no está en el catálogo.
func (c Catalog) ProductName(id string) string {
	if p, ok := c.products[id]; ok {
		return p.DisplayName()
	}
	return id
}

// LocationName nombre de la ubicación o su identidad si no está en el catálogo.
func (c Catalog) LocationName(id string) string {
	if l, ok := c.locations[id]; ok {
		return l.DisplayName()
	}
	return id
}

// ActivityRow una línea del feed de actividad reciente, lista para mostrar.
type ActivityRow struct {
	MovementID   int64
	Timestamp    time.Time
	Kind         string
	ProductID    string
	ProductName  string
	FromLocation string
	FromName     string
	ToLocation   string
	ToName       string
	Qty          int64
	Action       string // "added to X", "removed from X" o "moved from X to Y"
	Description  string // "<producto> <acción> (Qty: n)"
}

// RecentActivity ordena los movimientos por timestamp descendente y proyecta los primeros limit.
// El orden entre timestamps iguales no está definido. limit <= 0 usa DefaultRecentActivityLimit.
func RecentActivity(movements []entity.Movement, catalog Catalog, limit int) []ActivityRow {
	if limit <= 0 {
		limit = DefaultRecentActivityLimit
	}
	sorted := SortByRecency(movements)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	rows := make([]ActivityRow, 0, len(sorted))
	for _, m := range sorted {
		rows = append(rows, activityRow(m, catalog))
	}
	return rows
}

// SortByRecency devuelve una copia de los movimientos ordenada del más reciente al más antiguo.
func SortByRecency(movements []entity.Movement) []entity.Movement {
	sorted := slices.Clone(movements)
	slices.SortFunc(sorted, func(a, b entity.Movement) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return sorted
}

func activityRow(m entity.Movement, catalog Catalog) ActivityRow {
	row := ActivityRow{
		MovementID:   m.MovementID,
		Timestamp:    m.Timestamp,
		Kind:         m.Kind(),
		ProductID:    m.ProductID,
		ProductName:  catalog.ProductName(m.ProductID),
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Qty:          m.Qty,
	}
	if m.FromLocation != "" {
		row.FromName = catalog.LocationName(m.FromLocation)
	}
	if m.ToLocation != "" {
		row.ToName = catalog.LocationName(m.ToLocation)
	}
	switch row.Kind {
	case entity.MovementKindTRANSFER:
		row.Action = fmt.Sprintf("moved from %s to %s", row.FromName, row.ToName)
	case entity.MovementKindIN:
		row.Action = "added to " + row.ToName
	case entity.MovementKindOUT:
		row.Action = "removed from " + row.FromName
	}
	parts := []string{row.ProductName}
	if row.Action != "" {
		parts = append(parts, row.Action)
	}
	row.Description = fmt.Sprintf("%s (Qty: %d)", strings.Join(parts, " "), m.Qty)
	return row
}

// StockRow una fila del reporte de stock por ubicación.
type StockRow struct {
	ProductID    string
	ProductName  string
	LocationID   string
	LocationName string
	Quantity     int64
}

// StockReport agrega por (producto, ubicación), descarta saldos no positivos, resuelve nombres
// y ordena por nombre de producto con comparación sensible al idioma (collate).
// Entre productos con el mismo nombre el orden no forma parte del contrato.
func StockReport(movements []entity.Movement, catalog Catalog, tag language.Tag) []StockRow {
	balances := PositiveBalances(AggregateByProductLocation(movements))
	rows := make([]StockRow, 0, len(balances))
	for k, qty := range balances {
		rows = append(rows, StockRow{
			ProductID:    k.ProductID,
			ProductName:  catalog.ProductName(k.ProductID),
			LocationID:   k.LocationID,
			LocationName: catalog.LocationName(k.LocationID),
			Quantity:     qty,
		})
	}
	// Orden base por identidades para que la salida no dependa del orden del map.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductID != rows[j].ProductID {
			return rows[i].ProductID < rows[j].ProductID
		}
		return rows[i].LocationID < rows[j].LocationID
	})
	col := collate.New(tag)
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].ProductName, rows[j].ProductName) < 0
	})
	return rows
}

// ProductTotalRow stock total de un producto (puede ser negativo si el log es inconsistente).
type ProductTotalRow struct {
	ProductID   string
	ProductName string
	Quantity    int64
}

// ProductTotals proyecta AggregateByProduct con nombres resueltos, ordenado igual que StockReport.
func ProductTotals(movements []entity.Movement, catalog Catalog, tag language.Tag) []ProductTotalRow {
	totals := AggregateByProduct(movements)
	rows := make([]ProductTotalRow, 0, len(totals))
	for id, qty := range totals {
		rows = append(rows, ProductTotalRow{ProductID: id, ProductName: catalog.ProductName(id), Quantity: qty})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })
	col := collate.New(tag)
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].ProductName, rows[j].ProductName) < 0
	})
	return rows
}

// ParseLocale interpreta una etiqueta BCP 47 ("es", "en-US"); ante error usa español.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Spanish
	}
	return tag
}
