// Package postgres persiste el snapshot del inventario en PostgreSQL (pgx/v5).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

var _ ports.SnapshotProvider = (*SnapshotProvider)(nil)

// DB subconjunto de *pgxpool.Pool que usa el proveedor.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SnapshotProvider implementación de ports.SnapshotProvider sobre PostgreSQL.
type SnapshotProvider struct {
	db DB
}

// NewSnapshotProvider construye el adaptador de persistencia del snapshot.
func NewSnapshotProvider(db DB) *SnapshotProvider {
	return &SnapshotProvider{db: db}
}

// Load lee las tres tablas en orden de inserción.
func (p *SnapshotProvider) Load(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{}
	var err error

	snap.Products, err = queryAll(ctx, p.db,
		`SELECT product_id, name, description FROM products ORDER BY position`,
		func(row pgx.CollectableRow) (entity.Product, error) {
			var pr entity.Product
			err := row.Scan(&pr.ProductID, &pr.Name, &pr.Description)
			return pr, err
		})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	snap.Locations, err = queryAll(ctx, p.db,
		`SELECT location_id, name, address FROM locations ORDER BY position`,
		func(row pgx.CollectableRow) (entity.Location, error) {
			var l entity.Location
			err := row.Scan(&l.LocationID, &l.Name, &l.Address)
			return l, err
		})
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}

	snap.Movements, err = queryAll(ctx, p.db,
		`SELECT movement_id, moved_at, product_id, from_location, to_location, qty
		 FROM product_movements ORDER BY position`,
		func(row pgx.CollectableRow) (entity.Movement, error) {
			var m entity.Movement
			err := row.Scan(&m.MovementID, &m.Timestamp, &m.ProductID, &m.FromLocation, &m.ToLocation, &m.Qty)
			m.Timestamp = normalizeTimestamp(m.Timestamp)
			return m, err
		})
	if err != nil {
		return nil, fmt.Errorf("load movements: %w", err)
	}
	return snap, nil
}

// Save reemplaza el contenido de las tres tablas en una sola transacción.
func (p *SnapshotProvider) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	if snapshot == nil {
		snapshot = &entity.Snapshot{}
	}
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		for _, table := range []string{"product_movements", "locations", "products"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		copies := []struct {
			table   string
			columns []string
			rows    [][]any
		}{
			{"products", productColumns, productRows(snapshot.Products)},
			{"locations", locationColumns, locationRows(snapshot.Locations)},
			{"product_movements", movementColumns, movementRows(snapshot.Movements)},
		}
		for _, c := range copies {
			if len(c.rows) == 0 {
				continue
			}
			if _, err := tx.CopyFrom(ctx, pgx.Identifier{c.table}, c.columns, pgx.CopyFromRows(c.rows)); err != nil {
				return fmt.Errorf("copy %s: %w", c.table, err)
			}
		}
		return nil
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	return err
}

func queryAll[T any](ctx context.Context, db DB, sql string, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
