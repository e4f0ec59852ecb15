// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"errors"
	"math"
	"testing"
)

func TestLogistic(t *testing.T) {
	t.Parallel()

	assertFloatClose(t, Logistic(-2, 2, -2), 0.5)

	if p := Logistic(-6, 2, -2); p < 0.99 {
		t.Fatalf("expected probability near 1 for very low z, got %v", p)
	}
	if p := Logistic(3, 2, -2); p > 0.01 {
		t.Fatalf("expected probability near 0 for high z, got %v", p)
	}
	if Logistic(-1, 1.5, -2) >= Logistic(-1.5, 1.5, -2) {
		t.Fatalf("expected logistic to decrease in z")
	}
}

func TestEstimateRiskAtMinusTwoSD(t *testing.T) {
	t.Parallel()

	hb, _ := HeightBandFor(SexMale, 3)
	wb, _ := WeightBandFor(SexMale, 3)

	risk, err := EstimateRisk(SexMale, 3, hb.M2, wb.M2)
	if err != nil {
		t.Fatalf("EstimateRisk failed: %v", err)
	}

	assertFloatClose(t, risk.ZHeight, -2)
	assertFloatClose(t, risk.ZWeight, -2)
	assertFloatClose(t, risk.Probability, 0.5)
}

func TestEstimateRiskWeighting(t *testing.T) {
	t.Parallel()

	hb, _ := HeightBandFor(SexFemale, 12)
	wb, _ := WeightBandFor(SexFemale, 12)

	risk, err := EstimateRisk(SexFemale, 12, hb.Median, wb.M3)
	if err != nil {
		t.Fatalf("EstimateRisk failed: %v", err)
	}

	want := HeightShare*Logistic(0, HeightSteepness, RiskThreshold) +
		WeightShare*Logistic(-3, WeightSteepness, RiskThreshold)
	assertFloatClose(t, risk.Probability, want)
}

func TestEstimateRiskUsesFourPointWeightBand(t *testing.T) {
	t.Parallel()

	wb, _ := WeightBandFor(SexMale, 10)
	hb, _ := HeightBandFor(SexMale, 10)

	// Halfway between -2SD and the median lies at z=-1 on the four-point
	// band even though the seven-point band has its own -1SD value.
	weight := (wb.M2 + wb.Median) / 2

	risk, err := EstimateRisk(SexMale, 10, hb.Median, weight)
	if err != nil {
		t.Fatalf("EstimateRisk failed: %v", err)
	}

	assertFloatClose(t, risk.ZWeight, -1)
}

func TestEstimateRiskBounds(t *testing.T) {
	t.Parallel()

	for _, sex := range []Sex{SexMale, SexFemale} {
		for age := 0.0; age <= 60; age += 6 {
			for height := 20.0; height <= 160; height += 7.5 {
				for weight := 0.5; weight <= 40; weight += 2.5 {
					risk, err := EstimateRisk(sex, age, height, weight)
					if err != nil {
						t.Fatalf("EstimateRisk failed: %v", err)
					}
					if risk.Probability < 0 || risk.Probability > 1 || math.IsNaN(risk.Probability) {
						t.Fatalf("probability out of bounds: %v", risk.Probability)
					}
				}
			}
		}
	}

	extreme, err := EstimateRisk(SexMale, 3, -1e6, 1e6)
	if err != nil {
		t.Fatalf("EstimateRisk failed: %v", err)
	}
	if extreme.Probability < 0 || extreme.Probability > 1 {
		t.Fatalf("probability out of bounds for extreme input: %v", extreme.Probability)
	}
}

func TestEstimateRiskRejectsUnknownSex(t *testing.T) {
	t.Parallel()

	if _, err := EstimateRisk(Sex("x"), 3, 60, 6); !errors.Is(err, ErrOutOfDomain) {
		t.Fatalf("expected ErrOutOfDomain, got %v", err)
	}
}
