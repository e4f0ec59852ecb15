/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"fmt"
	"math"
)

// Age bounds of the reference tables, in months.
const (
	MinAgeMonths = 0
	MaxAgeMonths = 60
)

// HeightBand holds the height-for-age reference values (cm) for one
// (sex, age) cell.
type HeightBand struct {
	M3     float64 `json:"sd_neg3" yaml:"sd_neg3"`
	M2     float64 `json:"sd_neg2" yaml:"sd_neg2"`
	Median float64 `json:"median" yaml:"median"`
	P2     float64 `json:"sd_pos2" yaml:"sd_pos2"`
}

// Points returns the band keyed at SD positions -3, -2, 0 and +2.
func (b HeightBand) Points() []Point {
	return []Point{
		{SD: -3, Value: b.M3},
		{SD: -2, Value: b.M2},
		{SD: 0, Value: b.Median},
		{SD: 2, Value: b.P2},
	}
}

// WeightBand holds the weight-for-age reference values (kg) for one
// (sex, age) cell.
type WeightBand struct {
	M3     float64 `json:"sd_neg3" yaml:"sd_neg3"`
	M2     float64 `json:"sd_neg2" yaml:"sd_neg2"`
	M1     float64 `json:"sd_neg1" yaml:"sd_neg1"`
	Median float64 `json:"median" yaml:"median"`
	P1     float64 `json:"sd_pos1" yaml:"sd_pos1"`
	P2     float64 `json:"sd_pos2" yaml:"sd_pos2"`
	P3     float64 `json:"sd_pos3" yaml:"sd_pos3"`
}

// Points returns the four-point subset (-3, -2, 0, +2) used for the
// weight z-score. The -1, +1 and +3 positions are not part of it.
func (b WeightBand) Points() []Point {
	return []Point{
		{SD: -3, Value: b.M3},
		{SD: -2, Value: b.M2},
		{SD: 0, Value: b.Median},
		{SD: 2, Value: b.P2},
	}
}

// AllPoints returns all seven SD positions of the band.
func (b WeightBand) AllPoints() []Point {
	return []Point{
		{SD: -3, Value: b.M3},
		{SD: -2, Value: b.M2},
		{SD: -1, Value: b.M1},
		{SD: 0, Value: b.Median},
		{SD: 1, Value: b.P1},
		{SD: 2, Value: b.P2},
		{SD: 3, Value: b.P3},
	}
}

// RoundAge converts a possibly fractional age into a table index. The value
// is rounded half to even and clamped into [MinAgeMonths, MaxAgeMonths];
// out-of-range ages are not an error.
func RoundAge(ageMonths float64) int {
	if math.IsNaN(ageMonths) {
		return MinAgeMonths
	}

	a := math.RoundToEven(ageMonths)

	switch {
	case a < MinAgeMonths:
		return MinAgeMonths
	case a > MaxAgeMonths:
		return MaxAgeMonths
	}

	return int(a)
}

// HeightBandFor returns the height-for-age band for sex at ageMonths.
func HeightBandFor(sex Sex, ageMonths float64) (HeightBand, error) {
	if !sex.Valid() {
		return HeightBand{}, fmt.Errorf("height band: %w: %q", ErrOutOfDomain, sex)
	}

	a := RoundAge(ageMonths)
	if sex == SexMale {
		return heightForAgeBoys[a], nil
	}

	return heightForAgeGirls[a], nil
}

// WeightBandFor returns the weight-for-age band for sex at ageMonths.
func WeightBandFor(sex Sex, ageMonths float64) (WeightBand, error) {
	if !sex.Valid() {
		return WeightBand{}, fmt.Errorf("weight band: %w: %q", ErrOutOfDomain, sex)
	}

	a := RoundAge(ageMonths)
	if sex == SexMale {
		return weightForAgeBoys[a], nil
	}

	return weightForAgeGirls[a], nil
}
