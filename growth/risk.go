/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "math"

// Logistic parameters of the risk estimate. Height-for-age carries four
// times the weight of weight-for-age.
const (
	RiskThreshold   = -2.0
	HeightSteepness = 2.0
	WeightSteepness = 1.5
	HeightShare     = 0.8
	WeightShare     = 0.2
)

// Risk is the combined probability and the z-scores it was derived from.
type Risk struct {
	Probability float64 `json:"probability" yaml:"probability"`
	ZHeight     float64 `json:"z_height" yaml:"z_height"`
	ZWeight     float64 `json:"z_weight" yaml:"z_weight"`
}

// Logistic maps z to 1/(1+exp(k*(z-threshold))). It decreases in z: scores
// well below threshold approach 1 and scores well above approach 0.
func Logistic(z, k, threshold float64) float64 {
	return 1.0 / (1.0 + math.Exp(k*(z-threshold)))
}

// EstimateRisk computes the height and weight z-scores for a measurement
// and combines their logistic transforms into a probability in [0, 1].
func EstimateRisk(sex Sex, ageMonths, heightCm, weightKg float64) (Risk, error) {
	hb, err := HeightBandFor(sex, ageMonths)
	if err != nil {
		return Risk{}, err
	}

	wb, err := WeightBandFor(sex, ageMonths)
	if err != nil {
		return Risk{}, err
	}

	return riskFromBands(hb, wb, heightCm, weightKg), nil
}

func riskFromBands(hb HeightBand, wb WeightBand, heightCm, weightKg float64) Risk {
	zHeight := Interpolate(heightCm, hb.Points())
	zWeight := Interpolate(weightKg, wb.Points())

	pHeight := Logistic(zHeight, HeightSteepness, RiskThreshold)
	pWeight := Logistic(zWeight, WeightSteepness, RiskThreshold)

	return Risk{
		Probability: clamp01(HeightShare*pHeight + WeightShare*pWeight),
		ZHeight:     zHeight,
		ZWeight:     zWeight,
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}
