package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const queryCreateSchemaMigrations = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// pendingMigrations returns migration file names in apply order, skipping
// versions already recorded.
func pendingMigrations(applied map[string]bool) ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}
	slices.Sort(names)

	pending := names[:0]
	for _, name := range names {
		if !applied[name] {
			pending = append(pending, name)
		}
	}
	return pending, nil
}

// RunMigrations applies pending SQL migrations in filename order, each in its
// own transaction together with its schema_migrations record. There are no
// down migrations; fix forward only.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, queryCreateSchemaMigrations); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	rows, err := pool.Query(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("listing applied migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("scanning applied migrations: %w", err)
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	pending, err := pendingMigrations(applied)
	if err != nil {
		return err
	}

	for _, name := range pending {
		sql, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return fmt.Errorf("applying migration %s: %w", name, err)
			}
			if _, err := tx.Exec(ctx,
				"INSERT INTO schema_migrations (version) VALUES ($1)", name,
			); err != nil {
				return fmt.Errorf("recording migration %s: %w", name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
