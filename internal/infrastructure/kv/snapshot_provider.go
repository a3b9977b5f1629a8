// Package kv persiste el snapshot del inventario en un almacén clave-valor textual
// con tres claves (productos, ubicaciones, movimientos), cada una con un arreglo JSON.
// Es el mismo formato que usa el cliente web en localStorage, así que los datos son intercambiables.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// Claves del almacén (sin prefijo).
const (
	KeyProducts  = "inventoryProducts"
	KeyLocations = "inventoryLocations"
	KeyMovements = "inventoryMovements"
)

var _ ports.SnapshotProvider = (*SnapshotProvider)(nil)

// Store almacén clave-valor mínimo. SetAll debe escribir todas las claves de forma atómica.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	SetAll(ctx context.Context, values map[string]string) error
}

// SnapshotProvider implementa ports.SnapshotProvider sobre un Store.
type SnapshotProvider struct {
	store  Store
	prefix string
}

// NewSnapshotProvider construye el proveedor. prefix se antepone a las tres claves (puede ser vacío).
func NewSnapshotProvider(store Store, prefix string) *SnapshotProvider {
	return &SnapshotProvider{store: store, prefix: prefix}
}

// Load lee las tres claves; las ausentes se interpretan como colecciones vacías.
func (p *SnapshotProvider) Load(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{
		Products:  []entity.Product{},
		Locations: []entity.Location{},
		Movements: []entity.Movement{},
	}
	if err := p.read(ctx, KeyProducts, &snap.Products); err != nil {
		return nil, err
	}
	if err := p.read(ctx, KeyLocations, &snap.Locations); err != nil {
		return nil, err
	}
	if err := p.read(ctx, KeyMovements, &snap.Movements); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save serializa las tres colecciones y las escribe juntas.
func (p *SnapshotProvider) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	if snapshot == nil {
		snapshot = &entity.Snapshot{}
	}
	values := make(map[string]string, 3)
	for key, v := range map[string]any{
		KeyProducts:  nonNil(snapshot.Products),
		KeyLocations: nonNil(snapshot.Locations),
		KeyMovements: nonNil(snapshot.Movements),
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("kv: serializar %s: %w", key, err)
		}
		values[p.prefix+key] = string(raw)
	}
	if err := p.store.SetAll(ctx, values); err != nil {
		return fmt.Errorf("kv: guardar snapshot: %w", err)
	}
	return nil
}

func (p *SnapshotProvider) read(ctx context.Context, key string, dst any) error {
	raw, found, err := p.store.Get(ctx, p.prefix+key)
	if err != nil {
		return fmt.Errorf("kv: leer %s: %w", key, err)
	}
	if !found || raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("kv: decodificar %s: %w", key, err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
