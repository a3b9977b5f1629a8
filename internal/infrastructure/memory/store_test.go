package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeProvider registra los snapshots guardados y puede fallar a demanda.
type fakeProvider struct {
	saved []*entity.Snapshot
	err   error
}

func (f *fakeProvider) Load(context.Context) (*entity.Snapshot, error) {
	if len(f.saved) == 0 {
		return &entity.Snapshot{}, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeProvider) Save(_ context.Context, s *entity.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, s)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Colecciones
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_ProductosOrdenDeInsercionYReemplazo(t *testing.T) {
	s := memory.NewStore()
	products := s.Products()
	products.Upsert(entity.Product{ProductID: "P2", Name: "Silla"})
	products.Upsert(entity.Product{ProductID: "P1", Name: "Laptop", Description: "vieja"})
	products.Upsert(entity.Product{ProductID: "P3", Name: "Monitor"})

	// Reemplazo completo: la descripción omitida no sobrevive.
	products.Upsert(entity.Product{ProductID: "P1", Name: "Laptop Pro"})

	all := products.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"P2", "P1", "P3"}, []string{all[0].ProductID, all[1].ProductID, all[2].ProductID})
	p, ok := products.Find("P1")
	require.True(t, ok)
	assert.Equal(t, entity.Product{ProductID: "P1", Name: "Laptop Pro"}, p)
}

func TestStore_RemoveIdempotente(t *testing.T) {
	s := memory.NewStore()
	locations := s.Locations()
	locations.Upsert(entity.Location{LocationID: "L1", Name: "Bodega"})
	locations.Upsert(entity.Location{LocationID: "L2", Name: "Tienda"})
	locations.Upsert(entity.Location{LocationID: "L3", Name: "Depósito"})

	assert.True(t, locations.Remove("L2"))
	assert.False(t, locations.Remove("L2"), "eliminar algo ausente no es error")
	_, ok := locations.Find("L2")
	assert.False(t, ok)

	// El índice se reconstruye tras el borrado intermedio.
	l3, ok := locations.Find("L3")
	require.True(t, ok)
	assert.Equal(t, "Depósito", l3.Name)
	assert.Len(t, locations.All(), 2)
}

func TestStore_AllDevuelveCopia(t *testing.T) {
	s := memory.NewStore()
	s.Products().Upsert(entity.Product{ProductID: "P1", Name: "Laptop"})
	all := s.Products().All()
	all[0].Name = "modificado"

	p, _ := s.Products().Find("P1")
	assert.Equal(t, "Laptop", p.Name)
	assert.NotNil(t, memory.NewStore().Movements().All(), "lista vacía, no nil")
}

func TestStore_MovimientosReferenciasYMaxID(t *testing.T) {
	s := memory.NewStore()
	movements := s.Movements()
	assert.Equal(t, int64(0), movements.MaxID())

	movements.Upsert(entity.Movement{MovementID: 10, ProductID: "P1", ToLocation: "L1", Qty: 5})
	movements.Upsert(entity.Movement{MovementID: 7, ProductID: "P1", FromLocation: "L1", ToLocation: "L2", Qty: 1})

	assert.Equal(t, int64(10), movements.MaxID())
	assert.True(t, movements.IsLocationReferenced("L1"))
	assert.True(t, movements.IsLocationReferenced("L2"))
	assert.False(t, movements.IsLocationReferenced("L3"))
	assert.False(t, movements.IsLocationReferenced(""), "la ubicación vacía nunca está referenciada")
}

func TestStore_SnapshotYRestore(t *testing.T) {
	s := memory.NewStore()
	s.Products().Upsert(entity.Product{ProductID: "P1", Name: "Laptop"})
	s.Movements().Upsert(entity.Movement{MovementID: 1, ProductID: "P1", ToLocation: "L1", Qty: 3})
	snap := s.Snapshot()

	other := memory.NewStore()
	other.Restore(snap)
	assert.Equal(t, snap, other.Snapshot())

	other.Restore(nil)
	assert.True(t, other.Snapshot().IsEmpty())
}

func TestStore_RestoreRenumeraMovimientosConIDRepetido(t *testing.T) {
	s := memory.NewStore()
	s.Restore(&entity.Snapshot{Movements: []entity.Movement{
		{MovementID: 5, ProductID: "P1", ToLocation: "L1", Qty: 10},
		{MovementID: 5, ProductID: "P1", ToLocation: "L1", Qty: 7},
	}})

	movements := s.Movements().All()
	require.Len(t, movements, 2, "dos registros en el mismo milisegundo no se fusionan")
	assert.Equal(t, int64(5), movements[0].MovementID)
	assert.Equal(t, int64(6), movements[1].MovementID)
	assert.Equal(t, int64(7), movements[1].Qty)
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_PersisteDespuesDeCadaMutacion(t *testing.T) {
	s := memory.NewStore()
	provider := &fakeProvider{}
	runner := memory.NewTxRunner(s, provider)

	for _, id := range []string{"P1", "P2"} {
		err := runner.Run(context.Background(), func(p repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
			p.Upsert(entity.Product{ProductID: id, Name: id})
			return nil
		})
		require.NoError(t, err)
	}

	require.Len(t, provider.saved, 2, "un Save por mutación")
	assert.Len(t, provider.saved[0].Products, 1)
	assert.Len(t, provider.saved[1].Products, 2)
}

func TestTxRunner_RollbackSiFallaLaFuncion(t *testing.T) {
	s := memory.NewStore()
	s.Products().Upsert(entity.Product{ProductID: "P1", Name: "Laptop"})
	provider := &fakeProvider{}
	runner := memory.NewTxRunner(s, provider)
	boom := errors.New("boom")

	err := runner.Run(context.Background(), func(p repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		p.Remove("P1")
		p.Upsert(entity.Product{ProductID: "P9"})
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, provider.saved, "una mutación rechazada no se persiste")
	_, ok := s.Products().Find("P1")
	assert.True(t, ok)
	_, ok = s.Products().Find("P9")
	assert.False(t, ok)
}

func TestTxRunner_RollbackSiLaFuncionHacePanic(t *testing.T) {
	s := memory.NewStore()
	provider := &fakeProvider{}
	runner := memory.NewTxRunner(s, provider)

	assert.PanicsWithValue(t, "boom", func() {
		_ = runner.Run(context.Background(), func(p repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
			p.Upsert(entity.Product{ProductID: "P1"})
			panic("boom")
		})
	})
	assert.Empty(t, s.Products().All(), "la mutación a medias se descarta")
	assert.Empty(t, provider.saved)

	err := runner.Run(context.Background(), func(p repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		p.Upsert(entity.Product{ProductID: "P2"})
		return nil
	})
	require.NoError(t, err, "el lock quedó liberado")
	assert.Len(t, s.Products().All(), 1)
}

func TestTxRunner_RollbackSiFallaLaPersistencia(t *testing.T) {
	s := memory.NewStore()
	provider := &fakeProvider{err: errors.New("disco lleno")}
	runner := memory.NewTxRunner(s, provider)

	err := runner.Run(context.Background(), func(_ repository.ProductRepository, l repository.LocationRepository, _ repository.MovementRepository) error {
		l.Upsert(entity.Location{LocationID: "L1"})
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disco lleno")
	assert.Empty(t, s.Locations().All())
}

func TestTxRunner_SinProvider(t *testing.T) {
	s := memory.NewStore()
	runner := memory.NewTxRunner(s, nil)
	err := runner.Run(context.Background(), func(_ repository.ProductRepository, _ repository.LocationRepository, m repository.MovementRepository) error {
		m.Upsert(entity.Movement{MovementID: 1, ProductID: "P1", ToLocation: "L1"})
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, s.Movements().All(), 1)
}

func TestTxRunner_EscriturasConcurrentesSeSerializan(t *testing.T) {
	s := memory.NewStore()
	runner := memory.NewTxRunner(s, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = runner.Run(context.Background(), func(_ repository.ProductRepository, _ repository.LocationRepository, m repository.MovementRepository) error {
				m.Upsert(entity.Movement{MovementID: m.MaxID() + 1, ProductID: "P1", ToLocation: "L1", Qty: 1})
				return nil
			})
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Movements().All(), 50, "MaxID+1 dentro del lock nunca colisiona")
}
