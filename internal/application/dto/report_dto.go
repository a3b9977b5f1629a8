package dto

import "time"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts  int   `json:"total_products"`
	TotalLocations int   `json:"total_locations"`
	TotalMovements int   `json:"total_movements"`
	TotalStock     int64 `json:"total_stock"` // suma por producto, cada saldo acotado en cero

	RecentActivity []ActivityDTO `json:"recent_activity"`
}

// ActivityDTO una línea del widget de actividad reciente.
type ActivityDTO struct {
	MovementID  int64     `json:"movement_id"`
	Timestamp   time.Time `json:"timestamp"`
	Kind        string    `json:"kind"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Action      string    `json:"action"`      // ej: "moved from Main Warehouse to Retail Store"
	Description string    `json:"description"` // ej: "Laptop Computer added to Main Warehouse (Qty: 50)"
	Qty         int64     `json:"qty"`
}

// StockRowDTO fila del reporte de stock por ubicación.
type StockRowDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Quantity     int64  `json:"quantity"`
}

// StockReportResponse respuesta de GET /api/reports/stock?format=json.
type StockReportResponse struct {
	Items       []StockRowDTO `json:"items"`
	Locale      string        `json:"locale"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// ProductTotalDTO stock total de un producto en todas las ubicaciones.
type ProductTotalDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// ProductTotalsResponse respuesta de GET /api/reports/products.
type ProductTotalsResponse struct {
	Items      []ProductTotalDTO `json:"items"`
	GrandTotal int64             `json:"grand_total"`
}
