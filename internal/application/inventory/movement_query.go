package inventory

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// MovementUseCase consulta y elimina movimientos del libro.
type MovementUseCase struct {
	txRunner     ports.TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner ports.TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// List devuelve los movimientos más recientes primero, paginados.
func (uc *MovementUseCase) List(page dto.PageRequest) *dto.MovementListResponse {
	page.DefaultPage()
	sorted := inventory.SortByRecency(uc.movementRepo.All())
	catalog := uc.catalog()

	start, end := page.Window(len(sorted))
	items := make([]dto.MovementResponse, 0, end-start)
	for _, m := range sorted[start:end] {
		items = append(items, *toMovementResponse(m, catalog))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(sorted)},
	}
}

// GetByID obtiene un movimiento por id.
func (uc *MovementUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	m, ok := uc.movementRepo.Find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m, uc.catalog()), nil
}

// Delete elimina un movimiento; el stock se recalcula sin él. Eliminar uno inexistente no es error.
func (uc *MovementUseCase) Delete(ctx context.Context, id int64) error {
	if _, ok := uc.movementRepo.Find(id); !ok {
		return nil
	}
	return uc.txRunner.Run(ctx, func(_ repository.ProductRepository, _ repository.LocationRepository, movements repository.MovementRepository) error {
		movements.Remove(id)
		return nil
	})
}

func (uc *MovementUseCase) catalog() inventory.Catalog {
	return inventory.NewCatalog(uc.productRepo.All(), uc.locationRepo.All())
}
