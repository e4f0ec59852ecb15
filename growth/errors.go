/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "errors"

var (
	// ErrOutOfDomain is returned when a sex value is not one of the
	// recognized tokens.
	ErrOutOfDomain = errors.New("sex is out of domain")
)
