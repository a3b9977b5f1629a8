package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones (bodegas, tiendas, depósitos).
type LocationUseCase struct {
	repo repository.LocationRepository
	tx   ports.TxRunner
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, tx ports.TxRunner) *LocationUseCase {
	return &LocationUseCase{repo: repo, tx: tx}
}

// Create crea una ubicación. Un location_id ya existente devuelve domain.ErrDuplicate.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la ubicación es obligatorio", domain.ErrInvalidInput)
	}
	location := entity.Location{
		LocationID: strings.TrimSpace(in.LocationID),
		Name:       name,
		Address:    strings.TrimSpace(in.Address),
	}
	if location.LocationID == "" {
		location.LocationID = uuid.New().String()
	}

	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, locations repository.LocationRepository, _ repository.MovementRepository) error {
		if _, exists := locations.Find(location.LocationID); exists {
			return fmt.Errorf("%w: ubicación %s", domain.ErrDuplicate, location.LocationID)
		}
		locations.Upsert(location)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, ok := uc.repo.Find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(location), nil
}

// Update reemplaza el registro completo.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la ubicación es obligatorio", domain.ErrInvalidInput)
	}
	location := entity.Location{LocationID: id, Name: name, Address: strings.TrimSpace(in.Address)}

	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, locations repository.LocationRepository, _ repository.MovementRepository) error {
		if _, exists := locations.Find(id); !exists {
			return domain.ErrNotFound
		}
		locations.Upsert(location)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones en orden de inserción con paginación.
func (uc *LocationUseCase) List(page dto.PageRequest) *dto.LocationListResponse {
	page.DefaultPage()
	all := uc.repo.All()
	start, end := page.Window(len(all))
	items := make([]dto.LocationResponse, 0, end-start)
	for _, l := range all[start:end] {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(all)},
	}
}

// Delete elimina una ubicación. Si algún movimiento la usa como origen o destino
// devuelve domain.ErrLocationReferenced y no modifica nada; si no existe no es error.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	if _, exists := uc.repo.Find(id); !exists {
		return nil
	}
	return uc.tx.Run(ctx, func(_ repository.ProductRepository, locations repository.LocationRepository, movements repository.MovementRepository) error {
		if _, exists := locations.Find(id); !exists {
			return nil
		}
		if movements.IsLocationReferenced(id) {
			return fmt.Errorf("%w: %s", domain.ErrLocationReferenced, id)
		}
		locations.Remove(id)
		return nil
	})
}

func toLocationResponse(l entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{LocationID: l.LocationID, Name: l.Name, Address: l.Address}
}
