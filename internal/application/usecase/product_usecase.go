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

// ProductUseCase casos de uso CRUD para productos.
// Las lecturas van directo al repositorio; las mutaciones pasan por el TxRunner.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   ports.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx ports.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un producto. Un product_id ya existente devuelve domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	product := entity.Product{
		ProductID:   strings.TrimSpace(in.ProductID),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}
	if product.ProductID == "" {
		product.ProductID = uuid.New().String()
	}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		if _, exists := products.Find(product.ProductID); exists {
			return fmt.Errorf("%w: producto %s", domain.ErrDuplicate, product.ProductID)
		}
		products.Upsert(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, ok := uc.repo.Find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update reemplaza el registro completo. Un id inexistente devuelve domain.ErrNotFound.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	product := entity.Product{ProductID: id, Name: name, Description: strings.TrimSpace(in.Description)}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		if _, exists := products.Find(id); !exists {
			return domain.ErrNotFound
		}
		products.Upsert(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos en orden de inserción con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) *dto.ProductListResponse {
	page.DefaultPage()
	all := uc.repo.All()
	start, end := page.Window(len(all))
	items := make([]dto.ProductResponse, 0, end-start)
	for _, p := range all[start:end] {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(all)},
	}
}

// Delete elimina un producto. Eliminar uno inexistente no es error.
// Los movimientos que lo referencian se conservan y muestran el id en lugar del nombre.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, exists := uc.repo.Find(id); !exists {
		return nil
	}
	return uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		products.Remove(id)
		return nil
	})
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ProductID: p.ProductID, Name: p.Name, Description: p.Description}
}
