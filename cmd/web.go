/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/stuntcheck/batch"
	"github.com/humaidq/stuntcheck/db"
	"github.com/humaidq/stuntcheck/routes"
	"github.com/humaidq/stuntcheck/static"
	"github.com/humaidq/stuntcheck/templates"
)

func newStartCommand() *cli.Command {
	return &cli.Command{
		Name:    "start",
		Aliases: []string{"run"},
		Usage:   "Start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Value:   "8080",
				Sources: cli.EnvVars("STUNTCHECK_PORT"),
				Usage:   "the web server port",
			},
			databaseURLFlag(),
			&cli.StringFlag{
				Name:    "csrf-secret",
				Sources: cli.EnvVars("CSRF_SECRET"),
				Usage:   "secret for CSRF tokens (random per process when unset)",
			},
			&cli.BoolFlag{
				Name:  "dev",
				Value: false,
				Usage: "enables development mode (templates are read from disk)",
			},
			workersFlag(),
		},
		Action: start,
	}
}

// webOptions configures newWebApp.
type webOptions struct {
	Dev        bool
	CSRFSecret string
	Batch      batch.Options
}

func newWebApp(opts webOptions) (*flamego.Flame, error) {
	if opts.Dev {
		flamego.SetEnv(flamego.EnvTypeDev)
	} else {
		flamego.SetEnv(flamego.EnvTypeProd)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())

	tmplOpts := template.Options{Directory: "templates"}
	if !opts.Dev {
		fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
		if err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}

		tmplOpts = template.Options{FileSystem: fs}
	}

	f.Use(routes.RequestLogger)
	f.Use(routes.NoCacheHeaders())
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{Secret: opts.CSRFSecret}))
	f.Use(template.Templater(tmplOpts))
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())
	f.Map(opts.Batch)

	configureEmptyNotFoundHandler(f)

	f.Get("/healthz", routes.Healthz)
	f.Get("/", routes.Home)

	f.Get("/individual", routes.IndividualForm)
	f.Post("/individual", csrf.Validate, routes.IndividualAssess)

	f.Get("/group", routes.GroupForm)
	f.Post("/group", csrf.Validate, routes.GroupUpload)
	f.Get("/group/template.csv", routes.GroupTemplate)
	f.Get("/group/result/{id}", routes.GroupResult)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

func start(ctx context.Context, cmd *cli.Command) error {
	if databaseURL := cmd.String("database-url"); databaseURL != "" {
		if err := connectDB(ctx, cmd); err != nil {
			return err
		}
		defer db.Close()

		appLogger.Info("Syncing database schema...")

		if err := db.SyncSchema(ctx, databaseURL); err != nil {
			return fmt.Errorf("failed to sync schema: %w", err)
		}

		appLogger.Info("Database schema synced successfully")
	}

	secret := cmd.String("csrf-secret")
	if secret == "" {
		appLogger.Warn("CSRF_SECRET not set, tokens will not survive restarts")
	}

	f, err := newWebApp(webOptions{
		Dev:        cmd.Bool("dev"),
		CSRFSecret: secret,
		Batch:      batch.Options{Workers: cmd.Int("workers")},
	})
	if err != nil {
		return err
	}

	port := cmd.String("port")

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     requestStdLogger,
	}

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info("Starting web server", "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}
