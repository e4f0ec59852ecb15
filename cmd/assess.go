/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/stuntcheck/growth"
)

// assessOutput pairs the measurement with its assessment.
type assessOutput struct {
	Input  growth.Measurement `json:"input" yaml:"input"`
	Result growth.Assessment  `json:"result" yaml:"result"`
}

func newAssessCommand() *cli.Command {
	return &cli.Command{
		Name:  "assess",
		Usage: "Evaluate a single child",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "sex",
				Required: true,
				Usage:    "Laki-laki or Perempuan (male/female aliases accepted)",
			},
			&cli.FloatFlag{
				Name:     "age",
				Required: true,
				Usage:    "age in months",
			},
			&cli.FloatFlag{
				Name:     "height",
				Required: true,
				Usage:    "length/height in cm",
			},
			&cli.FloatFlag{
				Name:     "weight",
				Required: true,
				Usage:    "weight in kg",
			},
			&cli.FloatFlag{
				Name:  "birth-weight",
				Usage: "birth weight in kg",
			},
			&cli.FloatFlag{
				Name:  "birth-height",
				Usage: "birth length in cm",
			},
			formatFlag(),
		},
		Action: assess,
	}
}

func assess(_ context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	sex, err := growth.ParseSex(cmd.String("sex"))
	if err != nil {
		return fmt.Errorf("invalid --sex: %w", err)
	}

	m := growth.Measurement{
		Sex:       sex,
		AgeMonths: cmd.Float("age"),
		HeightCm:  cmd.Float("height"),
		WeightKg:  cmd.Float("weight"),
	}

	if cmd.IsSet("birth-weight") {
		v := cmd.Float("birth-weight")
		m.BirthWeightKg = &v
	}

	if cmd.IsSet("birth-height") {
		v := cmd.Float("birth-height")
		m.BirthHeightCm = &v
	}

	result, err := growth.Assess(m)
	if err != nil {
		return fmt.Errorf("failed to assess: %w", err)
	}

	return encode(stdout(cmd), format, assessOutput{Input: m, Result: result})
}
