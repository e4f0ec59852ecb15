/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/humaidq/stuntcheck/growth"
)

// Row is an accepted record together with its assessment.
type Row struct {
	Line          int
	Sex           string
	AgeMonths     int
	BirthWeightKg *float64
	BirthHeightCm *float64
	WeightKg      float64
	HeightCm      float64
	Assessment    growth.Assessment
}

// Skip describes a record left out of the result and why.
type Skip struct {
	Line   int
	Reason error
}

// Report is the outcome of one batch run. Rows keep the input order.
type Report struct {
	RunID   uuid.UUID
	Total   int
	Rows    []Row
	Skipped []Skip
}

// Empty reports whether no record was valid. This is an outcome of its
// own rather than an error.
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}

// Options tunes Evaluate.
type Options struct {
	// Workers bounds concurrent evaluations. Zero uses GOMAXPROCS.
	Workers int
}

// EvaluateRecord parses and assesses a single record. Age, weight and height
// must be numeric; sex and birth measurements never cause a rejection.
func EvaluateRecord(rec Record) (Row, error) {
	age, err := ParseMonths(rec.Age)
	if err != nil {
		return Row{}, fmt.Errorf("%s: %w: %w", ColAge, ErrMissingRequiredField, err)
	}

	weight, err := ParseDecimal(rec.Weight)
	if err != nil {
		return Row{}, fmt.Errorf("%s: %w: %w", ColWeight, ErrMissingRequiredField, err)
	}

	height, err := ParseDecimal(rec.Height)
	if err != nil {
		return Row{}, fmt.Errorf("%s: %w: %w", ColHeight, ErrMissingRequiredField, err)
	}

	row := Row{
		Line:          rec.Line,
		Sex:           rec.Sex,
		AgeMonths:     age,
		BirthWeightKg: optionalDecimal(rec.BirthWeight),
		BirthHeightCm: optionalDecimal(rec.BirthHeight),
		WeightKg:      weight,
		HeightCm:      height,
	}

	row.Assessment, err = growth.Assess(growth.Measurement{
		Sex:           growth.SexFromToken(rec.Sex),
		AgeMonths:     float64(age),
		HeightCm:      height,
		WeightKg:      weight,
		BirthWeightKg: row.BirthWeightKg,
		BirthHeightCm: row.BirthHeightCm,
	})
	if err != nil {
		return Row{}, fmt.Errorf("failed to assess row: %w", err)
	}

	return row, nil
}

// Evaluate assesses records concurrently. Invalid records are skipped and
// listed in the report; output order always matches input order.
func Evaluate(ctx context.Context, records []Record, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	report := &Report{
		RunID: uuid.New(),
		Total: len(records),
	}

	rows := make([]Row, len(records))
	errs := make([]error, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rows[i], errs[i] = EvaluateRecord(records[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s interrupted: %w", report.RunID, err)
	}

	for i := range records {
		if errs[i] != nil {
			logger.Debug("skipping row", "run_id", report.RunID, "line", records[i].Line, "reason", errs[i])
			report.Skipped = append(report.Skipped, Skip{Line: records[i].Line, Reason: errs[i]})

			continue
		}

		report.Rows = append(report.Rows, rows[i])
	}

	logger.Info("batch evaluated",
		"run_id", report.RunID,
		"records", report.Total,
		"accepted", len(report.Rows),
		"skipped", len(report.Skipped),
		"workers", workers,
	)

	return report, nil
}
