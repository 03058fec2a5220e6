package db

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"restaurant-booking/internal/domain/table"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by EnsureSchema.
func Schema() string {
	return schemaSQL
}

// Bootstrap creates the schema and installs the floor plan. Safe to run on an
// empty database or one that was already bootstrapped.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	if err := EnsureSchema(ctx, pool); err != nil {
		return err
	}
	return Seed(ctx, pool)
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var sections, tables int64
	for _, s := range table.DefaultSections() {
		tag, err := tx.Exec(ctx, `
			INSERT INTO sections (name, description) VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`, s.Name, s.Description)
		if err != nil {
			return fmt.Errorf("failed to seed section %q: %w", s.Name, err)
		}
		sections += tag.RowsAffected()
	}

	for _, t := range table.DefaultTables() {
		tag, err := tx.Exec(ctx, `
			INSERT INTO tables (number, capacity, section_id)
			SELECT $1, $2, s.id FROM sections s WHERE s.name = $3
			ON CONFLICT (number) DO NOTHING`, t.Number, t.Capacity, t.Section)
		if err != nil {
			return fmt.Errorf("failed to seed table %d: %w", t.Number, err)
		}
		tables += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("bootstrap completed", "sections_inserted", sections, "tables_inserted", tables)
	return nil
}
