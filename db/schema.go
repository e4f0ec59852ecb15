/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	// Register pgx with database/sql for goose migrations.
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// GetEmbeddedMigrations returns the embedded migrations filesystem for use by CLI commands
func GetEmbeddedMigrations() embed.FS {
	return embedMigrations
}

// Migrate applies all pending migrations to databaseURL.
func Migrate(databaseURL string) error {
	if databaseURL == "" {
		return ErrDatabaseURLNotSet
	}

	// goose works on database/sql; reusing the URL as given keeps Unix sockets and
	// connection options intact.
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close migration connection", "error", err)
		}
	}()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// SyncSchema runs migrations and then mirrors the growth reference tables.
func SyncSchema(ctx context.Context, databaseURL string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	if err := Migrate(databaseURL); err != nil {
		return err
	}

	if _, err := SyncGrowthReferences(ctx); err != nil {
		return fmt.Errorf("failed to sync growth references: %w", err)
	}

	return nil
}
