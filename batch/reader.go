/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is one raw input row. Values are kept as text until evaluation so
// that a malformed cell only affects its own row.
type Record struct {
	Line        int
	Sex         string
	Age         string
	BirthWeight string
	BirthHeight string
	Weight      string
	Height      string
}

// MissingColumnsError reports the required columns absent from a header.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s, kolom yang dibutuhkan: %s (tidak ditemukan: %s)",
		ErrMalformedBatchInput, strings.Join(RequiredColumns(), ", "), strings.Join(e.Missing, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMalformedBatchInput
}

// NormalizeColumn trims and lowercases a header cell.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

// Read parses CSV input into records. Every required column must be
// present in the header; extra columns are ignored and short rows are
// padded with empty cells. A stray quote inside an unquoted cell is kept
// as text so that only its row fails numeric parsing.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBatchInput, errEmptyInput)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := NormalizeColumn(h)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns() {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	cell := func(rec []string, col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var records []Record
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := cr.FieldPos(0)

		records = append(records, Record{
			Line:        line,
			Sex:         cell(rec, ColSex),
			Age:         cell(rec, ColAge),
			BirthWeight: cell(rec, ColBirthWeight),
			BirthHeight: cell(rec, ColBirthHeight),
			Weight:      cell(rec, ColWeight),
			Height:      cell(rec, ColHeight),
		})
	}

	return records, nil
}
