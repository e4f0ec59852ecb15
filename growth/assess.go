/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// Label is the final stunting prediction.
type Label string

// Label values.
const (
	LabelStunting    Label = "Stunting"
	LabelNotStunting Label = "Tidak Stunting"
)

// LabelFor derives the label from the height category alone. It does not
// look at the risk probability, so the two can disagree near -2SD.
func LabelFor(height HeightCategory) Label {
	if height.IsStunted() {
		return LabelStunting
	}

	return LabelNotStunting
}

// Measurement is one child's anthropometric record. Birth measurements are
// carried along but do not influence the assessment.
type Measurement struct {
	Sex           Sex      `json:"sex" yaml:"sex"`
	AgeMonths     float64  `json:"age_months" yaml:"age_months"`
	HeightCm      float64  `json:"height_cm" yaml:"height_cm"`
	WeightKg      float64  `json:"weight_kg" yaml:"weight_kg"`
	BirthWeightKg *float64 `json:"birth_weight_kg,omitempty" yaml:"birth_weight_kg,omitempty"`
	BirthHeightCm *float64 `json:"birth_height_cm,omitempty" yaml:"birth_height_cm,omitempty"`
}

// Assessment is the outcome of evaluating a Measurement.
type Assessment struct {
	AgeMonths        int            `json:"age_months" yaml:"age_months"`
	HeightCategory   HeightCategory `json:"height_category" yaml:"height_category"`
	WeightCategory   WeightCategory `json:"weight_category" yaml:"weight_category"`
	HeightThresholds Thresholds     `json:"height_thresholds" yaml:"height_thresholds"`
	WeightThresholds Thresholds     `json:"weight_thresholds" yaml:"weight_thresholds"`
	Probability      float64        `json:"probability" yaml:"probability"`
	ZHeight          float64        `json:"z_height" yaml:"z_height"`
	ZWeight          float64        `json:"z_weight" yaml:"z_weight"`
	Label            Label          `json:"label" yaml:"label"`
	Advice           Advice         `json:"advice" yaml:"advice"`
}

// Assess evaluates m against the reference tables. It only fails when the
// sex is not recognized; ages outside the table range are clamped.
func Assess(m Measurement) (Assessment, error) {
	hb, err := HeightBandFor(m.Sex, m.AgeMonths)
	if err != nil {
		return Assessment{}, err
	}

	wb, err := WeightBandFor(m.Sex, m.AgeMonths)
	if err != nil {
		return Assessment{}, err
	}

	heightCat := hb.Classify(m.HeightCm)
	weightCat := wb.Classify(m.WeightKg)
	risk := riskFromBands(hb, wb, m.HeightCm, m.WeightKg)

	return Assessment{
		AgeMonths:        RoundAge(m.AgeMonths),
		HeightCategory:   heightCat,
		WeightCategory:   weightCat,
		HeightThresholds: hb.Thresholds(),
		WeightThresholds: wb.Thresholds(),
		Probability:      risk.Probability,
		ZHeight:          risk.ZHeight,
		ZWeight:          risk.ZWeight,
		Label:            LabelFor(heightCat),
		Advice:           Recommend(heightCat, weightCat),
	}, nil
}
