/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package batch

import "errors"

var (
	// ErrMalformedBatchInput is returned when the table header lacks a
	// required column. It aborts the whole batch.
	ErrMalformedBatchInput = errors.New("kolom tidak lengkap")
	// ErrMissingRequiredField marks a row without age, weight or height.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrNumericParseFailure marks a value that is not a finite number.
	ErrNumericParseFailure = errors.New("not a number")
	errEmptyInput          = errors.New("empty input")
)
