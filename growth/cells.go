/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// Cell is one (sex, age) row of both reference tables.
type Cell struct {
	Sex       Sex        `json:"sex" yaml:"sex"`
	AgeMonths int        `json:"age_months" yaml:"age_months"`
	Height    HeightBand `json:"height_for_age" yaml:"height_for_age"`
	Weight    WeightBand `json:"weight_for_age" yaml:"weight_for_age"`
}

// Sexes lists the sexes covered by the reference tables.
func Sexes() []Sex {
	return []Sex{SexMale, SexFemale}
}

// CellFor returns the reference row for sex at ageMonths, after rounding
// and clamping the age.
func CellFor(sex Sex, ageMonths float64) (Cell, error) {
	h, err := HeightBandFor(sex, ageMonths)
	if err != nil {
		return Cell{}, err
	}

	w, err := WeightBandFor(sex, ageMonths)
	if err != nil {
		return Cell{}, err
	}

	return Cell{Sex: sex, AgeMonths: RoundAge(ageMonths), Height: h, Weight: w}, nil
}

// Cells returns every reference row, boys first, ordered by age.
func Cells() []Cell {
	cells := make([]Cell, 0, len(Sexes())*(MaxAgeMonths-MinAgeMonths+1))

	for _, sex := range Sexes() {
		for age := MinAgeMonths; age <= MaxAgeMonths; age++ {
			// Sexes only yields known sexes, so the lookup cannot fail.
			cell, _ := CellFor(sex, float64(age))
			cells = append(cells, cell)
		}
	}

	return cells
}
