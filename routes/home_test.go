// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
)

func TestHomeAndHealthz(t *testing.T) {
	t.Parallel()

	tpl := &recordingTemplate{}
	data := template.Data{}
	f := newTestApp(newTestSession(), tpl, data)

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if tpl.name != "home" || tpl.status != http.StatusOK || data["IsHome"] != true {
		t.Fatalf("unexpected home render: %q %d %v", tpl.name, tpl.status, data)
	}

	rec = httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected healthz response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestMiddlewareInjectsTemplateData(t *testing.T) {
	t.Parallel()

	data := template.Data{}

	f := flamego.New()
	f.Use(func(c flamego.Context) {
		c.MapTo(testCSRF{token: "token-123"}, (*csrf.CSRF)(nil))
		c.MapTo(FlashMessage{Type: FlashWarning, Message: "hati-hati"}, (*session.Flash)(nil))
		c.Map(data)
		c.Next()
	})
	f.Use(CSRFInjector())
	f.Use(FlashInjector())
	f.Use(NoCacheHeaders())
	f.Get("/", func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if data["csrf_token"] != "token-123" {
		t.Fatalf("expected csrf token to be injected, got %v", data["csrf_token"])
	}

	flash, ok := data["Flash"].(FlashMessage)
	if !ok || flash.Message != "hati-hati" {
		t.Fatalf("expected flash to be injected, got %v", data["Flash"])
	}

	if got := rec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Fatalf("unexpected cache-control header: %q", got)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	t.Parallel()

	var got string

	f := flamego.New()
	f.Get("/", func(c flamego.Context) {
		got = clientIP(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")

	f.ServeHTTP(httptest.NewRecorder(), req)

	if got != "203.0.113.7" {
		t.Fatalf("expected forwarded client ip, got %q", got)
	}
}
