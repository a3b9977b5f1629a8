package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")

	// Rechazos del validador de movimientos, en el orden en que se evalúan.
	ErrMissingLocation    = errors.New("el movimiento requiere al menos una ubicación (origen o destino)")
	ErrSameLocation       = errors.New("origen y destino no pueden ser la misma ubicación")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un entero no negativo")
	ErrMissingProduct     = errors.New("el movimiento requiere un producto")
	ErrLocationReferenced = errors.New("la ubicación tiene historial de movimientos")
)
