/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/humaidq/stuntcheck/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewApp().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
