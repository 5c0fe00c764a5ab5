package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql) y hace ping.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// schema es idempotente; Migrate se puede correr en cada deploy.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS dog_profiles (
		id                   UUID PRIMARY KEY,
		owner_user_id        TEXT NOT NULL,
		name                 TEXT NOT NULL,
		breed                TEXT NOT NULL,
		weight               NUMERIC(6,2) NOT NULL DEFAULT 0,
		vet_issues           TEXT NOT NULL DEFAULT '',
		dietary_restrictions TEXT NOT NULL DEFAULT '',
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS dog_profiles_owner_created_idx
		ON dog_profiles (owner_user_id, created_at)`,
}

// Migrate aplica el schema dentro de una transacción.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return tx.Commit()
}
