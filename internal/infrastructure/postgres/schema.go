package postgres

import (
	"context"
	"fmt"
)

// Las tres tablas guardan el snapshot completo; position conserva el orden de inserción.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		product_id  TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		location_id TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		address     TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_movements (
		movement_id   BIGINT PRIMARY KEY,
		moved_at      TIMESTAMPTZ NOT NULL,
		product_id    TEXT NOT NULL,
		from_location TEXT NOT NULL DEFAULT '',
		to_location   TEXT NOT NULL DEFAULT '',
		qty           BIGINT NOT NULL,
		position      INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_movements_moved_at ON product_movements (moved_at DESC)`,
}

// EnsureSchema crea las tablas si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
