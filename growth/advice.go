/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"slices"
	"strings"
)

// Advice is a fixed advisory block: a title and its bullet lines.
type Advice struct {
	Title string   `json:"title" yaml:"title"`
	Lines []string `json:"lines" yaml:"lines"`
}

// String renders the block as a bold title followed by dash bullets.
func (a Advice) String() string {
	var b strings.Builder

	b.WriteString("**")
	b.WriteString(a.Title)
	b.WriteString("**")

	for _, line := range a.Lines {
		b.WriteString("\n- ")
		b.WriteString(line)
	}

	return b.String()
}

var (
	growthAdvice = Advice{
		Title: "Rekomendasi Terkait Pertumbuhan Anak:",
		Lines: []string{
			"Konsultasikan dengan tenaga kesehatan, seperti dokter atau bidan.",
			"Pantau tinggi badan secara berkala.",
			"Utamakan protein hewani (ikan, telur, ayam) serta zat besi dan zink.",
			"Perhatikan imunisasi dan riwayat infeksi.",
		},
	}

	nutritionAdvice = Advice{
		Title: "Rekomendasi Terkait Status Gizi:",
		Lines: []string{
			"Konsultasi dengan ahli gizi bila kenaikan tidak sesuai.",
			"Evaluasi kembali asupan energi dan protein anak.",
			"MP-ASI padat gizi 3x/hari dan selingan 1–2x.",
			"Pantau berat badan tiap 2–4 minggu.",
		},
	}

	maintainAdvice = Advice{
		Title: "Rekomendasi untuk Menjaga Pertumbuhan yang Baik:",
		Lines: []string{
			"Pertahankan pola makan seimbang (karbohidrat, protein, sayur, buah).",
			"Pastikan istirahat cukup dan aktivitas fisik rutin.",
			"Lakukan pemantauan tinggi dan berat badan secara berkala.",
		},
	}
)

// Recommend selects exactly one advisory block. Stunting advice wins over
// undernutrition advice, which wins over the general maintenance block.
func Recommend(height HeightCategory, weight WeightCategory) Advice {
	var a Advice

	switch {
	case height.IsStunted():
		a = growthAdvice
	case weight.IsUnderweight():
		a = nutritionAdvice
	default:
		a = maintainAdvice
	}

	a.Lines = slices.Clone(a.Lines)

	return a
}
