/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/humaidq/stuntcheck/growth"
)

// Indicator names a reference table.
type Indicator string

// Indicators mirrored to the database.
const (
	IndicatorHeightForAge Indicator = "height_for_age"
	IndicatorWeightForAge Indicator = "weight_for_age"
)

// GrowthReferenceDefinition is one row to be synced to the database.
// Height-for-age rows carry no -1, +1 or +3 SD values.
type GrowthReferenceDefinition struct {
	Sex       growth.Sex
	AgeMonths int
	Indicator Indicator
	SDNeg3    float64
	SDNeg2    float64
	SDNeg1    *float64
	Median    float64
	SDPos1    *float64
	SDPos2    float64
	SDPos3    *float64
}

// GrowthReference is a mirrored row as stored in the database.
type GrowthReference struct {
	GrowthReferenceDefinition
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ptr(f float64) *float64 {
	return &f
}

// GetGrowthReferenceDefinitions flattens the in-memory reference tables
// into database rows. The growth package stays the source of truth.
func GetGrowthReferenceDefinitions() []GrowthReferenceDefinition {
	cells := growth.Cells()
	defs := make([]GrowthReferenceDefinition, 0, 2*len(cells))

	for _, cell := range cells {
		h, w := cell.Height, cell.Weight

		defs = append(defs,
			GrowthReferenceDefinition{
				Sex: cell.Sex, AgeMonths: cell.AgeMonths, Indicator: IndicatorHeightForAge,
				SDNeg3: h.M3, SDNeg2: h.M2, Median: h.Median, SDPos2: h.P2,
			},
			GrowthReferenceDefinition{
				Sex: cell.Sex, AgeMonths: cell.AgeMonths, Indicator: IndicatorWeightForAge,
				SDNeg3: w.M3, SDNeg2: w.M2, SDNeg1: ptr(w.M1), Median: w.Median,
				SDPos1: ptr(w.P1), SDPos2: w.P2, SDPos3: ptr(w.P3),
			},
		)
	}

	return defs
}

// SyncGrowthReferences upserts every reference row in one transaction and
// returns the number of rows written.
func SyncGrowthReferences(ctx context.Context) (int, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	definitions := GetGrowthReferenceDefinitions()
	logger.Infof("Syncing %d growth reference rows to database...", len(definitions))

	query := `
		INSERT INTO growth_references (sex, age_months, indicator, sd_neg3, sd_neg2, sd_neg1, median, sd_pos1, sd_pos2, sd_pos3)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (sex, age_months, indicator)
		DO UPDATE SET
			sd_neg3 = EXCLUDED.sd_neg3,
			sd_neg2 = EXCLUDED.sd_neg2,
			sd_neg1 = EXCLUDED.sd_neg1,
			median = EXCLUDED.median,
			sd_pos1 = EXCLUDED.sd_pos1,
			sd_pos2 = EXCLUDED.sd_pos2,
			sd_pos3 = EXCLUDED.sd_pos3,
			updated_at = now()
	`

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to roll back growth reference sync", "error", err)
		}
	}()

	batch := &pgx.Batch{}
	for _, def := range definitions {
		batch.Queue(query,
			string(def.Sex), def.AgeMonths, string(def.Indicator),
			def.SDNeg3, def.SDNeg2, def.SDNeg1, def.Median,
			def.SDPos1, def.SDPos2, def.SDPos3,
		)
	}

	results := tx.SendBatch(ctx, batch)

	for _, def := range definitions {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("failed to sync growth reference for %s/%d/%s: %w",
				def.Sex, def.AgeMonths, def.Indicator, err)
		}
	}

	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit growth references: %w", err)
	}

	logger.Infof("Successfully synced %d growth reference rows", len(definitions))

	return len(definitions), nil
}

// CountGrowthReferences returns how many rows are mirrored.
func CountGrowthReferences(ctx context.Context) (int, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	var n int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM growth_references`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count growth references: %w", err)
	}

	return n, nil
}

// GetGrowthReference retrieves the mirrored row for sex, age and indicator.
func GetGrowthReference(ctx context.Context, sex growth.Sex, ageMonths int, indicator Indicator) (*GrowthReference, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT sex, age_months, indicator, sd_neg3, sd_neg2, sd_neg1, median, sd_pos1, sd_pos2, sd_pos3, created_at, updated_at
		FROM growth_references
		WHERE sex = $1 AND age_months = $2 AND indicator = $3
	`

	var (
		ref          GrowthReference
		sexName      string
		indicatorKey string
	)

	err := pool.QueryRow(ctx, query, string(sex), ageMonths, string(indicator)).Scan(
		&sexName, &ref.AgeMonths, &indicatorKey,
		&ref.SDNeg3, &ref.SDNeg2, &ref.SDNeg1, &ref.Median,
		&ref.SDPos1, &ref.SDPos2, &ref.SDPos3,
		&ref.CreatedAt, &ref.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%d/%s", ErrGrowthReferenceNotFound, sex, ageMonths, indicator)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get growth reference: %w", err)
	}

	ref.Sex = growth.Sex(sexName)
	ref.Indicator = Indicator(indicatorKey)

	return &ref, nil
}
