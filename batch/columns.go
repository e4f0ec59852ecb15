/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package batch

// Input column tokens, matched after trimming and lowercasing the header.
const (
	ColSex         = "jenis_kelamin"
	ColAge         = "usia_bulan"
	ColBirthWeight = "berat_lahir_kg"
	ColBirthHeight = "tinggi_lahir_cm"
	ColWeight      = "berat_badan_kg"
	ColHeight      = "tinggi_badan_cm"
)

// Appended result columns.
const (
	ColHeightCategory = "TB/U"
	ColWeightCategory = "BB/U"
	ColProbability    = "Prob_Risiko"
	ColZHeight        = "z_TBU"
	ColZWeight        = "z_BBU"
	ColLabel          = "Prediksi"
)

// File names offered for download.
const (
	TemplateFileName = "template_prediksi_stunting.csv"
	ResultFileName   = "hasil_prediksi_stunting.csv"
)

// RequiredColumns returns the input columns in template order.
func RequiredColumns() []string {
	return []string{ColSex, ColAge, ColBirthWeight, ColBirthHeight, ColWeight, ColHeight}
}

// OutputColumns returns the header of a result table.
func OutputColumns() []string {
	return append(RequiredColumns(),
		ColHeightCategory, ColWeightCategory, ColProbability, ColZHeight, ColZWeight, ColLabel)
}
