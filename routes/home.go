/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

// Home renders the landing page with both evaluation modes.
func Home(t template.Template, data template.Data) {
	data["IsHome"] = true
	t.HTML(http.StatusOK, "home")
}

// Healthz reports liveness.
func Healthz(c flamego.Context) {
	c.ResponseWriter().Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write([]byte("ok")); err != nil {
		logger.Warn("failed to write health response", "error", err)
	}
}
