// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"strings"
	"testing"
)

func TestAssessScenarios(t *testing.T) {
	t.Parallel()

	t.Run("boy at -2SD height is normal", func(t *testing.T) {
		t.Parallel()

		got, err := Assess(Measurement{Sex: SexMale, AgeMonths: 3, HeightCm: 57.3, WeightKg: 6.4})
		if err != nil {
			t.Fatalf("Assess failed: %v", err)
		}
		if got.HeightCategory != HeightNormal {
			t.Fatalf("expected Normal, got %q", got.HeightCategory)
		}
		if got.Label != LabelNotStunting {
			t.Fatalf("expected %q, got %q", LabelNotStunting, got.Label)
		}
		assertFloatClose(t, got.ZHeight, -2)
	})

	t.Run("boy below -3SD height is severely stunted", func(t *testing.T) {
		t.Parallel()

		got, err := Assess(Measurement{Sex: SexMale, AgeMonths: 3, HeightCm: 55.0, WeightKg: 6.4})
		if err != nil {
			t.Fatalf("Assess failed: %v", err)
		}
		if got.HeightCategory != HeightSeverelyStunted {
			t.Fatalf("expected %q, got %q", HeightSeverelyStunted, got.HeightCategory)
		}
		if got.Label != LabelStunting {
			t.Fatalf("expected %q, got %q", LabelStunting, got.Label)
		}
		if got.Advice.Title != growthAdvice.Title {
			t.Fatalf("expected growth advice, got %q", got.Advice.Title)
		}
	})

	t.Run("girl at -3SD weight is underweight", func(t *testing.T) {
		t.Parallel()

		got, err := Assess(Measurement{Sex: SexFemale, AgeMonths: 0, HeightCm: 49.1, WeightKg: 2.0})
		if err != nil {
			t.Fatalf("Assess failed: %v", err)
		}
		if got.WeightCategory != WeightUnderweight {
			t.Fatalf("expected %q, got %q", WeightUnderweight, got.WeightCategory)
		}
		if got.Advice.Title != nutritionAdvice.Title {
			t.Fatalf("expected nutrition advice, got %q", got.Advice.Title)
		}
	})

	t.Run("median height round trip", func(t *testing.T) {
		t.Parallel()

		for _, sex := range []Sex{SexMale, SexFemale} {
			for age := MinAgeMonths; age <= MaxAgeMonths; age++ {
				hb, _ := HeightBandFor(sex, float64(age))
				wb, _ := WeightBandFor(sex, float64(age))

				got, err := Assess(Measurement{Sex: sex, AgeMonths: float64(age), HeightCm: hb.Median, WeightKg: wb.Median})
				if err != nil {
					t.Fatalf("Assess failed: %v", err)
				}
				if got.HeightCategory != HeightNormal {
					t.Fatalf("%s %d months: expected Normal, got %q", sex, age, got.HeightCategory)
				}
				assertFloatClose(t, got.ZHeight, 0)
				assertFloatClose(t, got.ZWeight, 0)
				if got.AgeMonths != age {
					t.Fatalf("expected age %d, got %d", age, got.AgeMonths)
				}
			}
		}
	})
}

func TestAssessLabelIgnoresWeightAndProbability(t *testing.T) {
	t.Parallel()

	hb, _ := HeightBandFor(SexFemale, 18)
	wb, _ := WeightBandFor(SexFemale, 18)

	// Just above -2SD height with very low weight: high probability, but
	// the label follows the height category only.
	got, err := Assess(Measurement{Sex: SexFemale, AgeMonths: 18, HeightCm: hb.M2 + 0.01, WeightKg: wb.M3 - 1})
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	if got.Label != LabelNotStunting {
		t.Fatalf("expected %q, got %q", LabelNotStunting, got.Label)
	}
	if got.Probability < 0.4 {
		t.Fatalf("expected elevated probability, got %v", got.Probability)
	}

	for _, height := range []float64{hb.M3 - 1, hb.M2 - 0.1} {
		for _, weight := range []float64{wb.M3 - 1, wb.Median, wb.P3 + 1} {
			got, err := Assess(Measurement{Sex: SexFemale, AgeMonths: 18, HeightCm: height, WeightKg: weight})
			if err != nil {
				t.Fatalf("Assess failed: %v", err)
			}
			if got.Label != LabelStunting || !got.HeightCategory.IsStunted() {
				t.Fatalf("expected stunting for height %v weight %v, got %q / %q", height, weight, got.Label, got.HeightCategory)
			}
		}
	}
}

func TestAssessClampsAge(t *testing.T) {
	t.Parallel()

	got, err := Assess(Measurement{Sex: SexMale, AgeMonths: 72, HeightCm: 110, WeightKg: 18.3})
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	if got.AgeMonths != MaxAgeMonths {
		t.Fatalf("expected age to clamp to %d, got %d", MaxAgeMonths, got.AgeMonths)
	}
	assertFloatClose(t, got.ZHeight, 0)
}

func TestRecommendPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		height HeightCategory
		weight WeightCategory
		want   string
	}{
		{height: HeightStunted, weight: WeightSeverelyUnderweight, want: growthAdvice.Title},
		{height: HeightSeverelyStunted, weight: WeightOverweight, want: growthAdvice.Title},
		{height: HeightNormal, weight: WeightUnderweight, want: nutritionAdvice.Title},
		{height: HeightTall, weight: WeightSeverelyUnderweight, want: nutritionAdvice.Title},
		{height: HeightNormal, weight: WeightAdequate, want: maintainAdvice.Title},
		{height: HeightTall, weight: WeightOverweight, want: maintainAdvice.Title},
	}

	for _, tt := range tests {
		if got := Recommend(tt.height, tt.weight); got.Title != tt.want {
			t.Fatalf("Recommend(%q, %q) = %q, want %q", tt.height, tt.weight, got.Title, tt.want)
		}
	}
}

func TestAdviceString(t *testing.T) {
	t.Parallel()

	text := Recommend(HeightNormal, WeightAdequate).String()

	if !strings.HasPrefix(text, "**Rekomendasi untuk Menjaga Pertumbuhan yang Baik:**\n- ") {
		t.Fatalf("unexpected advisory text: %q", text)
	}
	if strings.Count(text, "\n- ") != len(maintainAdvice.Lines) {
		t.Fatalf("expected %d bullet lines, got %q", len(maintainAdvice.Lines), text)
	}
}

func TestRecommendReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Recommend(HeightStunted, WeightAdequate)
	a.Lines[0] = "changed"

	if growthAdvice.Lines[0] == "changed" {
		t.Fatalf("expected Recommend to return an independent copy")
	}
}
