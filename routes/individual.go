/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	htmltemplate "html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/stuntcheck/batch"
	"github.com/humaidq/stuntcheck/growth"
)

// numericField describes one bounded number input of the individual form.
type numericField struct {
	Name  string
	Label string
	Min   float64
	Max   float64
	Step  string
}

// Individual form inputs. Bounds belong to the form only; the growth
// package itself clamps ages instead of rejecting them.
var (
	fieldAge         = numericField{Name: "age", Label: "Usia (bulan)", Min: 0, Max: 60, Step: "1"}
	fieldWeight      = numericField{Name: "weight", Label: "Berat badan (kg)", Min: 1, Max: 30, Step: "0.1"}
	fieldHeight      = numericField{Name: "height", Label: "Tinggi badan (cm)", Min: 40, Max: 130, Step: "0.1"}
	fieldBirthWeight = numericField{Name: "birth_weight", Label: "Berat lahir (kg)", Min: 1, Max: 6, Step: "0.1"}
	fieldBirthHeight = numericField{Name: "birth_height", Label: "Tinggi lahir (cm)", Min: 30, Max: 60, Step: "0.1"}
)

// IndividualInput holds the raw form values so they can be re-rendered.
type IndividualInput struct {
	Sex         string
	Age         string
	Weight      string
	Height      string
	BirthWeight string
	BirthHeight string
}

func defaultIndividualInput() IndividualInput {
	return IndividualInput{
		Sex:         string(growth.SexMale),
		Age:         "3",
		Weight:      "4.0",
		Height:      "50.0",
		BirthWeight: "3.0",
		BirthHeight: "40.0",
	}
}

func individualInputFromRequest(c flamego.Context) IndividualInput {
	r := c.Request()

	return IndividualInput{
		Sex:         strings.TrimSpace(r.FormValue("sex")),
		Age:         strings.TrimSpace(r.FormValue(fieldAge.Name)),
		Weight:      strings.TrimSpace(r.FormValue(fieldWeight.Name)),
		Height:      strings.TrimSpace(r.FormValue(fieldHeight.Name)),
		BirthWeight: strings.TrimSpace(r.FormValue(fieldBirthWeight.Name)),
		BirthHeight: strings.TrimSpace(r.FormValue(fieldBirthHeight.Name)),
	}
}

// fieldError names the form field that failed validation.
type fieldError struct {
	Field numericField
	Err   error
}

func (e *fieldError) Error() string {
	if errors.Is(e.Err, errFieldOutOfRange) {
		return e.Field.Label + " " + e.Err.Error() + " (" + formatBound(e.Field.Min) + "–" + formatBound(e.Field.Max) + ")"
	}

	return e.Field.Label + " " + e.Err.Error()
}

func (e *fieldError) Unwrap() error {
	return e.Err
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseBounded(raw string, field numericField) (float64, error) {
	if raw == "" {
		return 0, &fieldError{Field: field, Err: errFieldRequired}
	}

	v, err := batch.ParseDecimal(raw)
	if err != nil {
		return 0, &fieldError{Field: field, Err: errFieldNotNumeric}
	}

	if v < field.Min || v > field.Max {
		return 0, &fieldError{Field: field, Err: errFieldOutOfRange}
	}

	return v, nil
}

// Measurement validates the input against the form bounds.
func (in IndividualInput) Measurement() (growth.Measurement, error) {
	var (
		m   growth.Measurement
		err error
	)

	m.Sex = growth.SexFromToken(in.Sex)

	if m.AgeMonths, err = parseBounded(in.Age, fieldAge); err != nil {
		return m, err
	}
	if m.WeightKg, err = parseBounded(in.Weight, fieldWeight); err != nil {
		return m, err
	}
	if m.HeightCm, err = parseBounded(in.Height, fieldHeight); err != nil {
		return m, err
	}

	birthWeight, err := parseBounded(in.BirthWeight, fieldBirthWeight)
	if err != nil {
		return m, err
	}
	birthHeight, err := parseBounded(in.BirthHeight, fieldBirthHeight)
	if err != nil {
		return m, err
	}

	m.BirthWeightKg = &birthWeight
	m.BirthHeightCm = &birthHeight

	return m, nil
}

func populateIndividualPageData(data template.Data, in IndividualInput) {
	data["IsIndividual"] = true
	data["Input"] = in
	data["Sexes"] = growth.Sexes()
	data["Fields"] = map[string]numericField{
		"Age":         fieldAge,
		"Weight":      fieldWeight,
		"Height":      fieldHeight,
		"BirthWeight": fieldBirthWeight,
		"BirthHeight": fieldBirthHeight,
	}
}

// IndividualForm renders the single-child form with its defaults.
func IndividualForm(t template.Template, data template.Data) {
	populateIndividualPageData(data, defaultIndividualInput())
	t.HTML(http.StatusOK, "individual")
}

// IndividualAssess evaluates one child and renders the result below the
// submitted form.
func IndividualAssess(c flamego.Context, t template.Template, data template.Data) {
	in := individualInputFromRequest(c)
	populateIndividualPageData(data, in)

	m, err := in.Measurement()
	if err != nil {
		data["Error"] = err.Error()
		t.HTML(http.StatusBadRequest, "individual")

		return
	}

	result, err := growth.Assess(m)
	if err != nil {
		logger.Error("failed to assess measurement", "error", err)

		data["Error"] = "Gagal menghitung hasil"
		t.HTML(http.StatusInternalServerError, "individual")

		return
	}

	data["Result"] = result

	chart, err := heightForAgeChart(m.Sex, result.AgeMonths, m.HeightCm)
	if err != nil {
		logger.Warn("failed to render growth chart", "error", err)
	} else {
		data["Chart"] = htmltemplate.HTML(chart) //nolint:gosec // Rendered by go-echarts from numeric series.
	}

	t.HTML(http.StatusOK, "individual")
}
