package inventory

import (
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// SampleData datos de demostración: cuatro productos, tres ubicaciones y tres movimientos
// (dos entradas y un traslado).
func SampleData() *entity.Snapshot {
	return &entity.Snapshot{
		Products: []entity.Product{
			{ProductID: "PROD001", Name: "Laptop Computer", Description: "High-performance business laptop"},
			{ProductID: "PROD002", Name: "Office Chair", Description: "Ergonomic office chair with lumbar support"},
			{ProductID: "PROD003", Name: "Monitor Display", Description: "24-inch LED monitor"},
			{ProductID: "PROD004", Name: "Wireless Mouse", Description: "Bluetooth wireless mouse"},
		},
		Locations: []entity.Location{
			{LocationID: "LOC001", Name: "Main Warehouse", Address: "123 Industrial St, City Center"},
			{LocationID: "LOC002", Name: "Store Front", Address: "456 Main St, Downtown"},
			{LocationID: "LOC003", Name: "Secondary Storage", Address: "789 Storage Ave, Industrial Zone"},
		},
		Movements: []entity.Movement{
			{MovementID: 1, Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), ProductID: "PROD001", ToLocation: "LOC001", Qty: 50},
			{MovementID: 2, Timestamp: time.Date(2024, 1, 16, 14, 20, 0, 0, time.UTC), ProductID: "PROD002", ToLocation: "LOC001", Qty: 25},
			{MovementID: 3, Timestamp: time.Date(2024, 1, 17, 9, 15, 0, 0, time.UTC), ProductID: "PROD001", FromLocation: "LOC001", ToLocation: "LOC002", Qty: 10},
		},
	}
}
