/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseURLNotSet is returned when no connection string was given.
	ErrDatabaseURLNotSet = errors.New("database url is not set")
	// ErrDatabaseNameNotSpecified is returned when the URL names no database.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in database url")
	// ErrDatabaseConnectionNotInitialized is returned before Init succeeded.
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	// ErrGrowthReferenceNotFound is returned when no mirrored row matches.
	ErrGrowthReferenceNotFound = errors.New("growth reference not found")
)
