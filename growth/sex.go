/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"fmt"
	"strings"
)

// Sex selects which WHO table variant is consulted.
type Sex string

// Sex values use the tokens found in the batch template.
const (
	SexMale   Sex = "Laki-laki"
	SexFemale Sex = "Perempuan"
)

// Valid reports whether s is one of the two recognized values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// SexFromToken maps a raw token to a Sex. Only the exact male token maps
// to SexMale; every other value, including empty or misspelled input,
// is treated as SexFemale.
func SexFromToken(token string) Sex {
	if token == string(SexMale) {
		return SexMale
	}

	return SexFemale
}

// ParseSex is the strict counterpart of SexFromToken. It accepts the
// template tokens and common English aliases, case-insensitively.
func ParseSex(token string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "laki-laki", "laki", "l", "male", "m", "boy":
		return SexMale, nil
	case "perempuan", "p", "female", "f", "girl":
		return SexFemale, nil
	}

	return "", fmt.Errorf("%w: %q", ErrOutOfDomain, token)
}
