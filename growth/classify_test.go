// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package growth

import "testing"

func TestClassifyHeightBoundaries(t *testing.T) {
	t.Parallel()

	// Boys, 3 months: 55.3 / 57.3 / 61.4 / 65.5
	tests := []struct {
		name   string
		height float64
		want   HeightCategory
	}{
		{name: "below -3SD", height: 55.0, want: HeightSeverelyStunted},
		{name: "at -3SD", height: 55.3, want: HeightStunted},
		{name: "between -3SD and -2SD", height: 56.5, want: HeightStunted},
		{name: "at -2SD", height: 57.3, want: HeightNormal},
		{name: "median", height: 61.4, want: HeightNormal},
		{name: "at +2SD", height: 65.5, want: HeightNormal},
		{name: "above +2SD", height: 65.6, want: HeightTall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, thresholds, err := ClassifyHeight(SexMale, 3, tt.height)
			if err != nil {
				t.Fatalf("ClassifyHeight failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ClassifyHeight(%v) = %q, want %q", tt.height, got, tt.want)
			}
			if thresholds.M2 != 57.3 || thresholds.P2 != 65.5 {
				t.Fatalf("unexpected thresholds %+v", thresholds)
			}
		})
	}
}

func TestClassifyWeightBoundaries(t *testing.T) {
	t.Parallel()

	// Girls, 0 months: 2.0 / 2.4 / 2.8 / 3.2 / 3.7 / 4.2 / 4.8
	tests := []struct {
		weight float64
		want   WeightCategory
	}{
		{weight: 1.9, want: WeightSeverelyUnderweight},
		{weight: 2.0, want: WeightUnderweight},
		{weight: 2.3, want: WeightUnderweight},
		{weight: 2.4, want: WeightAdequate},
		{weight: 4.2, want: WeightAdequate},
		{weight: 4.3, want: WeightOverweight},
	}

	for _, tt := range tests {
		got, _, err := ClassifyWeight(SexFemale, 0, tt.weight)
		if err != nil {
			t.Fatalf("ClassifyWeight failed: %v", err)
		}
		if got != tt.want {
			t.Fatalf("ClassifyWeight(%v) = %q, want %q", tt.weight, got, tt.want)
		}
	}
}

func TestCategoryPredicates(t *testing.T) {
	t.Parallel()

	for _, c := range []HeightCategory{HeightSeverelyStunted, HeightStunted} {
		if !c.IsStunted() {
			t.Fatalf("expected %q to be stunted", c)
		}
	}
	for _, c := range []HeightCategory{HeightNormal, HeightTall} {
		if c.IsStunted() {
			t.Fatalf("expected %q not to be stunted", c)
		}
	}
	for _, c := range []WeightCategory{WeightSeverelyUnderweight, WeightUnderweight} {
		if !c.IsUnderweight() {
			t.Fatalf("expected %q to be underweight", c)
		}
	}
	for _, c := range []WeightCategory{WeightAdequate, WeightOverweight} {
		if c.IsUnderweight() {
			t.Fatalf("expected %q not to be underweight", c)
		}
	}
}
