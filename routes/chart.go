/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/stuntcheck/growth"
)

// heightForAgeChart plots the child's height at ageMonths against the -3,
// -2, 0 and +2 SD curves of the reference table for sex.
func heightForAgeChart(sex growth.Sex, ageMonths int, heightCm float64) (string, error) {
	ages := make([]string, 0, growth.MaxAgeMonths+1)
	curves := map[string][]opts.LineData{}
	names := []string{"-3 SD", "-2 SD", "Median", "+2 SD"}

	for age := growth.MinAgeMonths; age <= growth.MaxAgeMonths; age++ {
		band, err := growth.HeightBandFor(sex, float64(age))
		if err != nil {
			return "", fmt.Errorf("failed to load height band: %w", err)
		}

		ages = append(ages, strconv.Itoa(age))

		for i, v := range []float64{band.M3, band.M2, band.Median, band.P2} {
			curves[names[i]] = append(curves[names[i]], opts.LineData{Value: v})
		}
	}

	// "-" leaves a gap in the series, so only the child's age is plotted.
	child := make([]opts.LineData, len(ages))
	for i := range child {
		child[i] = opts.LineData{Value: "-"}
	}
	child[ageMonths-growth.MinAgeMonths] = opts.LineData{Value: heightCm, Symbol: "circle", SymbolSize: 12}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Tinggi badan menurut umur",
			Subtitle: string(sex),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "bulan",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "cm",
			Scale: opts.Bool(true),
		}),
	)

	line.SetXAxis(ages)

	for _, name := range names {
		line.AddSeries(name, curves[name],
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(false),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Type:  "dashed",
				Width: 1.5,
			}),
		)
	}

	line.AddSeries("Anak", child,
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(true),
		}),
	)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
