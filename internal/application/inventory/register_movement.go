package inventory

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement(ctx, MovementInput)
// y devuelve el movimiento registrado con los nombres resueltos. userID puede ser vacío (API sin auth).
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest, userID string) (*dto.MovementResponse, error) {
	movement, err := uc.RegisterMovement(ctx, MovementInput{
		ProductID:    in.ProductID,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Qty:          in.Qty,
		UserID:       userID,
	})
	if err != nil {
		return nil, err
	}
	catalog := inventory.NewCatalog(uc.productRepo.All(), uc.locationRepo.All())
	return toMovementResponse(movement, catalog), nil
}

func toMovementResponse(m entity.Movement, catalog inventory.Catalog) *dto.MovementResponse {
	resp := &dto.MovementResponse{
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
		resp.FromName = catalog.LocationName(m.FromLocation)
	}
	if m.ToLocation != "" {
		resp.ToName = catalog.LocationName(m.ToLocation)
	}
	return resp
}
