package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Migrations are embedded so the migrate mode works regardless of the
// working directory.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// ApplyMigrations runs every embedded migration in filename order.
func ApplyMigrations(ctx context.Context, db DB) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
