// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/stuntcheck/batch"
)

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

func (s *testSession) flashMessage() (FlashMessage, bool) {
	msg, ok := s.flash.(FlashMessage)
	return msg, ok
}

type testCSRF struct {
	token string
}

func (c testCSRF) Token() string {
	return c.token
}

func (c testCSRF) ValidToken(string) bool {
	return true
}

func (c testCSRF) Error(http.ResponseWriter) {}

func (c testCSRF) Validate(flamego.Context) {}

// recordingTemplate remembers the last rendered template.
type recordingTemplate struct {
	status int
	name   string
}

func (r *recordingTemplate) HTML(status int, name string) {
	r.status = status
	r.name = name
}

func newTestApp(s session.Session, tmpl template.Template, data template.Data) *flamego.Flame {
	f := flamego.New()
	f.Use(func(c flamego.Context) {
		c.MapTo(s, (*session.Session)(nil))
		c.MapTo(tmpl, (*template.Template)(nil))
		c.Map(data)
		c.Map(batch.Options{Workers: 2})
		c.Next()
	})

	f.Get("/", Home)
	f.Get("/healthz", Healthz)
	f.Get("/individual", IndividualForm)
	f.Post("/individual", IndividualAssess)
	f.Get("/group", GroupForm)
	f.Get("/group/template.csv", GroupTemplate)
	f.Post("/group", GroupUpload)
	f.Get("/group/result/{id}", GroupResult)

	return f
}
