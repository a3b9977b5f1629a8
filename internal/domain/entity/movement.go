package entity

import "time"

// Tipos de movimiento, derivados de qué ubicaciones están presentes.
const (
	MovementKindIN       = "IN"       // solo destino: entrada de stock
	MovementKindOUT      = "OUT"      // solo origen: salida de stock
	MovementKindTRANSFER = "TRANSFER" // origen y destino: traslado entre ubicaciones
)

// Movement representa un movimiento de stock de un producto hacia, desde o entre ubicaciones.
// Nunca se actualiza: las correcciones se registran como movimientos nuevos.
// ProductID, FromLocation y ToLocation son referencias sueltas (pueden no existir en el store).
type Movement struct {
	MovementID   int64     `json:"movement_id"`
	Timestamp    time.Time `json:"timestamp"`
	ProductID    string    `json:"product_id"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	Qty          int64     `json:"qty"`
}

// Kind clasifica el movimiento según las ubicaciones informadas. Vacío si no tiene ninguna.
func (m Movement) Kind() string {
	switch {
	case m.FromLocation != "" && m.ToLocation != "":
		return MovementKindTRANSFER
	case m.ToLocation != "":
		return MovementKindIN
	case m.FromLocation != "":
		return MovementKindOUT
	}
	return ""
}

// References indica si el movimiento usa la ubicación como origen o destino.
func (m Movement) References(locationID string) bool {
	return locationID != "" && (m.FromLocation == locationID || m.ToLocation == locationID)
}
