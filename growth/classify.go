/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "math"

// HeightCategory is the height-for-age (TB/U) classification.
type HeightCategory string

// HeightCategory values.
const (
	HeightSeverelyStunted HeightCategory = "Sangat Pendek (Severe Stunting)"
	HeightStunted         HeightCategory = "Pendek (Stunting)"
	HeightNormal          HeightCategory = "Normal"
	HeightTall            HeightCategory = "Tinggi"
)

// IsStunted reports whether c is one of the two short-stature categories.
func (c HeightCategory) IsStunted() bool {
	return c == HeightSeverelyStunted || c == HeightStunted
}

// WeightCategory is the weight-for-age (BB/U) classification.
type WeightCategory string

// WeightCategory values.
const (
	WeightSeverelyUnderweight WeightCategory = "Gizi Buruk"
	WeightUnderweight         WeightCategory = "Gizi Kurang"
	WeightAdequate            WeightCategory = "Gizi Baik"
	WeightOverweight          WeightCategory = "Gizi Lebih"
)

// IsUnderweight reports whether c is one of the two undernutrition
// categories.
func (c WeightCategory) IsUnderweight() bool {
	return c == WeightSeverelyUnderweight || c == WeightUnderweight
}

// Thresholds are the cut-offs a category was decided against, rounded to
// one decimal for display.
type Thresholds struct {
	M3     float64 `json:"sd_neg3" yaml:"sd_neg3"`
	M2     float64 `json:"sd_neg2" yaml:"sd_neg2"`
	Median float64 `json:"median" yaml:"median"`
	P2     float64 `json:"sd_pos2" yaml:"sd_pos2"`
}

// Classify compares heightCm against the raw band values. The lower bound
// of every range is inclusive, so a height equal to -2SD is Normal.
func (b HeightBand) Classify(heightCm float64) HeightCategory {
	switch {
	case heightCm < b.M3:
		return HeightSeverelyStunted
	case heightCm < b.M2:
		return HeightStunted
	case heightCm <= b.P2:
		return HeightNormal
	}

	return HeightTall
}

// Thresholds returns the display cut-offs of b.
func (b HeightBand) Thresholds() Thresholds {
	return Thresholds{M3: round1(b.M3), M2: round1(b.M2), Median: round1(b.Median), P2: round1(b.P2)}
}

// Classify compares weightKg against -3SD, -2SD and +2SD of the band.
func (b WeightBand) Classify(weightKg float64) WeightCategory {
	switch {
	case weightKg < b.M3:
		return WeightSeverelyUnderweight
	case weightKg < b.M2:
		return WeightUnderweight
	case weightKg <= b.P2:
		return WeightAdequate
	}

	return WeightOverweight
}

// Thresholds returns the display cut-offs of b.
func (b WeightBand) Thresholds() Thresholds {
	return Thresholds{M3: round1(b.M3), M2: round1(b.M2), Median: round1(b.Median), P2: round1(b.P2)}
}

// ClassifyHeight looks up the band for sex and age and classifies heightCm.
func ClassifyHeight(sex Sex, ageMonths, heightCm float64) (HeightCategory, Thresholds, error) {
	band, err := HeightBandFor(sex, ageMonths)
	if err != nil {
		return "", Thresholds{}, err
	}

	return band.Classify(heightCm), band.Thresholds(), nil
}

// ClassifyWeight looks up the band for sex and age and classifies weightKg.
func ClassifyWeight(sex Sex, ageMonths, weightKg float64) (WeightCategory, Thresholds, error) {
	band, err := WeightBandFor(sex, ageMonths)
	if err != nil {
		return "", Thresholds{}, err
	}

	return band.Classify(weightKg), band.Thresholds(), nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
