/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/stuntcheck/db"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Database migration commands",
		Flags: []cli.Flag{databaseURLFlag()},
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Run all pending migrations",
				Action: migrateUp,
			},
			{
				Name:   "down",
				Usage:  "Roll back the last migration",
				Action: migrateDown,
			},
			{
				Name:   "status",
				Usage:  "Show migration status",
				Action: migrateStatus,
			},
			{
				Name:   "create",
				Usage:  "Create a new migration file <name>",
				Action: migrateCreate,
			},
			{
				Name:   "version",
				Usage:  "Print the current version of the database",
				Action: migrateVersion,
			},
		},
	}
}

func getDB(cmd *cli.Command) (*sql.DB, error) {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return nil, errDatabaseURLRequired
	}

	// Open a database/sql connection for goose
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		closeSQLDB(sqlDB)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set goose to use embedded migrations from db package
	goose.SetBaseFS(db.GetEmbeddedMigrations())

	if err := goose.SetDialect("postgres"); err != nil {
		closeSQLDB(sqlDB)
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}

	return sqlDB, nil
}

func closeSQLDB(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		appLogger.Warn("failed to close migration connection", "error", err)
	}
}

func migrateUp(_ context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(cmd)
	if err != nil {
		return err
	}
	defer closeSQLDB(sqlDB)

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Fprintln(stdout(cmd), "Migrations completed successfully")

	return nil
}

func migrateDown(_ context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(cmd)
	if err != nil {
		return err
	}
	defer closeSQLDB(sqlDB)

	if err := goose.Down(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	fmt.Fprintln(stdout(cmd), "Migration rolled back successfully")

	return nil
}

func migrateStatus(_ context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(cmd)
	if err != nil {
		return err
	}
	defer closeSQLDB(sqlDB)

	if err := goose.Status(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	return nil
}

func migrateVersion(_ context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(cmd)
	if err != nil {
		return err
	}
	defer closeSQLDB(sqlDB)

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get database version: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "Database version: %d\n", version)

	return nil
}

func migrateCreate(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() < 1 {
		return errMigrationNameRequired
	}

	name := args.First()

	// Development only: writes to the source tree, not the embedded FS.
	migrationsDir := "db/migrations"
	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create migrations directory: %w", err)
	}

	if err := goose.Create(nil, migrationsDir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "Created new migration in %s/\n", migrationsDir)

	return nil
}
