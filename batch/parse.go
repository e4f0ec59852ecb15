/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package batch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses a number that may use a comma as decimal separator.
// Empty, NaN and infinite values are rejected with ErrNumericParseFailure.
func ParseDecimal(raw string) (float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrNumericParseFailure)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumericParseFailure, raw)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNumericParseFailure, raw)
	}

	return v, nil
}

// ParseMonths parses an age in months and truncates it toward zero, so
// "3,9" yields 3.
func ParseMonths(raw string) (int, error) {
	v, err := ParseDecimal(raw)
	if err != nil {
		return 0, err
	}

	t := math.Trunc(v)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, fmt.Errorf("%w: %q", ErrNumericParseFailure, raw)
	}

	return int(t), nil
}

func optionalDecimal(raw string) *float64 {
	v, err := ParseDecimal(raw)
	if err != nil {
		return nil
	}

	return &v
}
