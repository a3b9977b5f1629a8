package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
// Sin from_location es una entrada, sin to_location una salida, con ambas un traslado.
type RegisterMovementRequest struct {
	ProductID    string `json:"product_id"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Qty          int64  `json:"qty"`
}

// MovementResponse salida de un movimiento con los nombres resueltos.
// Una referencia colgante se muestra con el id en lugar del nombre.
type MovementResponse struct {
	MovementID   int64     `json:"movement_id"`
	Timestamp    time.Time `json:"timestamp"`
	Kind         string    `json:"kind"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	FromLocation string    `json:"from_location"`
	FromName     string    `json:"from_name,omitempty"`
	ToLocation   string    `json:"to_location"`
	ToName       string    `json:"to_name,omitempty"`
	Qty          int64     `json:"qty"`
}

// MovementListResponse lista paginada de movimientos, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
