/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package growth classifies toddler growth measurements against the WHO
// child growth standards for ages 0 to 60 months.
//
// Height-for-age (TB/U) and weight-for-age (BB/U) are categorized against
// the raw reference bands, while a separate risk probability is derived
// from interpolated z-scores. The reference tables are package-level
// values that are never mutated, so every function here is safe for
// concurrent use.
package growth
