/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Values renders the row in OutputColumns order. Probability keeps three
// decimals and z-scores two; unparseable birth values are left empty.
func (r Row) Values() []string {
	a := r.Assessment

	return []string{
		r.Sex,
		strconv.Itoa(r.AgeMonths),
		formatOptional(r.BirthWeightKg),
		formatOptional(r.BirthHeightCm),
		formatNumber(r.WeightKg),
		formatNumber(r.HeightCm),
		string(a.HeightCategory),
		string(a.WeightCategory),
		strconv.FormatFloat(a.Probability, 'f', 3, 64),
		strconv.FormatFloat(a.ZHeight, 'f', 2, 64),
		strconv.FormatFloat(a.ZWeight, 'f', 2, 64),
		string(a.Label),
	}
}

// Write emits rows as CSV with the result header.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(OutputColumns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Line, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}

// WriteTemplate emits an empty input table holding only the header.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(RequiredColumns()); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	cw.Flush()

	return cw.Error()
}

// formatNumber keeps at least one decimal so whole values read as 4.0.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}

	return formatNumber(*v)
}
