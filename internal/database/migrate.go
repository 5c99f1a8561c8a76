package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ApplyMigrations прогоняет встроенные sql скрипты по порядку имен файлов.
// Скрипты идемпотентны, поэтому их можно применять при каждом старте.
func ApplyMigrations(ctx context.Context, db PGX) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		if err := db.Migrate(ctx, string(script)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}
