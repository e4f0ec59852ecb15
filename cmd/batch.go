/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/stuntcheck/batch"
)

func workersFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "workers",
		Sources: cli.EnvVars("STUNTCHECK_WORKERS"),
		Usage:   "concurrent row evaluations (0 uses all CPUs)",
	}
}

func newBatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Evaluate a CSV file of children",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   stdioPath,
				Usage:   "input CSV path, - for stdin",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   stdioPath,
				Usage:   "result CSV path, - for stdout",
			},
			workersFlag(),
		},
		Action: runBatch,
	}
}

func runBatch(ctx context.Context, cmd *cli.Command) (err error) {
	in, err := openInput(cmd, cmd.String("input"))
	if err != nil {
		return err
	}

	defer func() {
		if cerr := in.Close(); cerr != nil {
			appLogger.Warn("failed to close input", "error", cerr)
		}
	}()

	records, err := batch.Read(in)
	if err != nil {
		return err
	}

	report, err := batch.Evaluate(ctx, records, batch.Options{Workers: cmd.Int("workers")})
	if err != nil {
		return err
	}

	for _, skip := range report.Skipped {
		appLogger.Warn("row skipped", "line", skip.Line, "reason", skip.Reason)
	}

	if report.Empty() {
		appLogger.Warn("no valid rows", "records", report.Total)
		return nil
	}

	out, err := createOutput(cmd, cmd.String("output"))
	if err != nil {
		return err
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return batch.Write(out, report.Rows)
}

func newTemplateCommand() *cli.Command {
	return &cli.Command{
		Name:  "template",
		Usage: "Write an empty input CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   stdioPath,
				Usage:   "template path, - for stdout",
			},
		},
		Action: writeTemplate,
	}
}

func writeTemplate(_ context.Context, cmd *cli.Command) (err error) {
	out, err := createOutput(cmd, cmd.String("output"))
	if err != nil {
		return err
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return batch.WriteTemplate(out)
}
