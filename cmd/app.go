/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/stuntcheck/logging"
)

// NewApp builds the stuntcheck root command.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "stuntcheck",
		Usage: "Toddler stunting screening against WHO growth standards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("STUNTCHECK_LOG_LEVEL"),
				Usage:   "debug, info, warn or error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, logging.SetLevel(cmd.String("log-level"))
		},
		Commands: []*cli.Command{
			newStartCommand(),
			newAssessCommand(),
			newBatchCommand(),
			newTemplateCommand(),
			newRefsCommand(),
			newMigrateCommand(),
		},
	}
}
