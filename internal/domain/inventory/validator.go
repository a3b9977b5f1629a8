// Package inventory contiene los servicios de dominio del motor de stock:
// validación de movimientos, agregación de saldos y proyección de reportes.
// Son funciones puras sobre una foto del store; no guardan estado propio.
package inventory

import (
	"errors"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// Códigos estables de rechazo (se exponen en la API y en los logs).
const (
	RejectMissingLocation = "MISSING_LOCATION"
	RejectSameLocation    = "SAME_LOCATION"
	RejectInvalidQuantity = "INVALID_QUANTITY"
	RejectMissingProduct  = "MISSING_PRODUCT"
)

// ValidateMovement verifica las invariantes estructurales de un movimiento candidato.
// Devuelve nil si es admisible; si no, el primer error según este orden:
//  1. ErrMissingLocation: origen y destino vacíos.
//  2. ErrSameLocation: origen y destino informados e iguales.
//  3. ErrInvalidQuantity: cantidad negativa.
//  4. ErrMissingProduct: sin producto.
//
// Es determinista: el mismo candidato produce siempre el mismo rechazo.
func ValidateMovement(m entity.Movement) error {
	if m.FromLocation == "" && m.ToLocation == "" {
		return domain.ErrMissingLocation
	}
	if m.FromLocation != "" && m.FromLocation == m.ToLocation {
		return domain.ErrSameLocation
	}
	if m.Qty < 0 {
		return domain.ErrInvalidQuantity
	}
	if m.ProductID == "" {
		return domain.ErrMissingProduct
	}
	return nil
}

// RejectionCode traduce un error del validador a su código estable. "" si no es un rechazo conocido.
func RejectionCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingLocation):
		return RejectMissingLocation
	case errors.Is(err, domain.ErrSameLocation):
		return RejectSameLocation
	case errors.Is(err, domain.ErrInvalidQuantity):
		return RejectInvalidQuantity
	case errors.Is(err, domain.ErrMissingProduct):
		return RejectMissingProduct
	}
	return ""
}
