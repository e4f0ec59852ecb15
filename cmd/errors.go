/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errUnsupportedFormat     = errors.New("unsupported output format (use json or yaml)")
	errReferenceDrift        = errors.New("mirrored growth references differ from the built-in tables")
)
