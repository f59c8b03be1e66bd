// Package storage wires the local SQLite database: it opens the file,
// applies the embedded goose migrations, and hands out bound repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/videopick/videopick/internal/migrations"
	"github.com/videopick/videopick/internal/repositories/settings"
	"github.com/videopick/videopick/internal/repositories/videos"
)

// Repositories bundles the data-access objects bound to one database handle.
type Repositories struct {
	Videos   videos.Repository
	Settings settings.Repository
}

// RunMigrations applies all embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, migrates it, and returns
// the handle together with the repositories bound to it. The caller owns
// the handle and must close it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := &Repositories{
		Videos:   videos.NewSQLiteRepository(db),
		Settings: settings.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
