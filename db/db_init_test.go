// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"io/fs"
	"testing"
)

func TestInitRequiresDatabaseURL(t *testing.T) {
	if err := Init(testContext(), ""); !errors.Is(err, ErrDatabaseURLNotSet) {
		t.Fatalf("expected ErrDatabaseURLNotSet, got %v", err)
	}
}

func TestInitRequiresDatabaseName(t *testing.T) {
	t.Setenv("PGDATABASE", "")
	Close()

	err := Init(testContext(), "postgres://localhost:1/?sslmode=disable&connect_timeout=1")
	if !errors.Is(err, ErrDatabaseNameNotSpecified) {
		t.Fatalf("expected ErrDatabaseNameNotSpecified, got %v", err)
	}

	if Enabled() {
		t.Fatalf("expected pool to stay uninitialized")
	}
}

func TestOperationsRequirePool(t *testing.T) {
	Close()

	if err := SyncSchema(testContext(), "postgres://localhost/x"); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("SyncSchema: expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}
	if _, err := SyncGrowthReferences(testContext()); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("SyncGrowthReferences: expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}
	if _, err := CountGrowthReferences(testContext()); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("CountGrowthReferences: expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}
	if _, err := GetGrowthReference(testContext(), "Laki-laki", 0, IndicatorHeightForAge); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("GetGrowthReference: expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	if err := Migrate(""); !errors.Is(err, ErrDatabaseURLNotSet) {
		t.Fatalf("expected ErrDatabaseURLNotSet, got %v", err)
	}

	entries, err := fs.ReadDir(GetEmbeddedMigrations(), "migrations")
	if err != nil {
		t.Fatalf("expected embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected at least one migration")
	}
}

func TestInitAndSyncSchema(t *testing.T) {
	databaseURL := requireDatabase(t)

	Close()

	if err := Init(testContext(), databaseURL); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(Close)

	if GetPool() == nil || !Enabled() {
		t.Fatalf("expected pool to be initialized")
	}

	if err := SyncSchema(testContext(), databaseURL); err != nil {
		t.Fatalf("SyncSchema failed: %v", err)
	}

	// Migrations and upserts are idempotent.
	if err := SyncSchema(testContext(), databaseURL); err != nil {
		t.Fatalf("second SyncSchema failed: %v", err)
	}
}
