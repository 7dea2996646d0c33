package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/studyquest-backend/migrations"
)

// openMigrator opens a database/sql handle (goose requires *sql.DB) and a
// goose provider over the embedded migrations. The caller closes the DB.
//
// goose.NewProvider handles $$-delimited bodies correctly, unlike the legacy
// goose.Up which splits on semicolons.
func openMigrator(ctx context.Context, dsn string) (*sql.DB, *goose.Provider, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return db, provider, nil
}

// Migrate applies every pending migration and returns what was applied.
func Migrate(ctx context.Context, dsn string) ([]*goose.MigrationResult, error) {
	db, provider, err := openMigrator(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// MigrationStatus reports the applied state of every known migration.
func MigrationStatus(ctx context.Context, dsn string) ([]*goose.MigrationStatus, error) {
	db, provider, err := openMigrator(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	return status, nil
}
