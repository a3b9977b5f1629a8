package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

func newStore() (*memory.Store, *memory.TxRunner) {
	store := memory.NewStore()
	return store, memory.NewTxRunner(store, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_CreateYDuplicado(t *testing.T) {
	store, tx := newStore()
	uc := usecase.NewProductUseCase(store.Products(), tx)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{ProductID: " PROD001 ", Name: " Laptop ", Description: "x"})
	require.NoError(t, err)
	assert.Equal(t, "PROD001", out.ProductID)
	assert.Equal(t, "Laptop", out.Name)

	_, err = uc.Create(ctx, dto.CreateProductRequest{ProductID: "PROD001", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := uc.GetByID("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name, "el duplicado no reemplaza")
}

func TestProductUseCase_NombreObligatorio(t *testing.T) {
	store, tx := newStore()
	uc := usecase.NewProductUseCase(store.Products(), tx)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{ProductID: "P"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(context.Background(), "P", dto.UpdateProductRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.Products().All())
}

func TestProductUseCase_UpdateReemplazaRegistroCompleto(t *testing.T) {
	store, tx := newStore()
	uc := usecase.NewProductUseCase(store.Products(), tx)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateProductRequest{ProductID: "P", Name: "A", Description: "vieja"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "P", dto.UpdateProductRequest{Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", out.Name)
	assert.Empty(t, out.Description)

	_, err = uc.Update(ctx, "NOPE", dto.UpdateProductRequest{Name: "B"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_ListYDelete(t *testing.T) {
	store, tx := newStore()
	uc := usecase.NewProductUseCase(store.Products(), tx)
	ctx := context.Background()
	for _, id := range []string{"C", "A", "B"} {
		_, err := uc.Create(ctx, dto.CreateProductRequest{ProductID: id, Name: id})
		require.NoError(t, err)
	}

	list := uc.List(dto.PageRequest{Limit: 2, Offset: 1})
	require.Len(t, list.Items, 2)
	assert.Equal(t, "A", list.Items[0].ProductID, "orden de inserción")
	assert.Equal(t, 3, list.Page.Total)

	require.NoError(t, uc.Delete(ctx, "A"))
	require.NoError(t, uc.Delete(ctx, "A"))
	_, err := uc.GetByID("A")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, store.Products().All(), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ubicaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestLocationUseCase_CRUD(t *testing.T) {
	store, tx := newStore()
	uc := usecase.NewLocationUseCase(store.Locations(), tx)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateLocationRequest{Name: "Bodega", Address: "Calle 1"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.LocationID, "sin id se genera un uuid")

	_, err = uc.Create(ctx, dto.CreateLocationRequest{LocationID: created.LocationID, Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	updated, err := uc.Update(ctx, created.LocationID, dto.UpdateLocationRequest{Name: "Bodega Norte"})
	require.NoError(t, err)
	assert.Equal(t, "Bodega Norte", updated.Name)
	assert.Empty(t, updated.Address)

	require.NoError(t, uc.Delete(ctx, created.LocationID))
	_, err = uc.GetByID(created.LocationID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationUseCase_DeleteReferenciada(t *testing.T) {
	store, tx := newStore()
	uc := usecase.NewLocationUseCase(store.Locations(), tx)
	ctx := context.Background()
	store.Restore(&entity.Snapshot{
		Locations: []entity.Location{{LocationID: "L1", Name: "Uno"}, {LocationID: "L2", Name: "Dos"}},
		Movements: []entity.Movement{{MovementID: 1, ProductID: "P", FromLocation: "L1", Qty: 1}},
	})

	err := uc.Delete(ctx, "L1")
	assert.ErrorIs(t, err, domain.ErrLocationReferenced)
	_, err = uc.GetByID("L1")
	assert.NoError(t, err)

	assert.NoError(t, uc.Delete(ctx, "L2"))
	assert.NoError(t, uc.Delete(ctx, "NOPE"), "eliminar una ubicación inexistente no es error")
}
