/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/humaidq/stuntcheck/batch"
)

const (
	maxUploadBytes = 10 << 20

	sessionKeyGroupResultID  = "group_result_id"
	sessionKeyGroupResultCSV = "group_result_csv"

	msgNoValidRows    = "Tidak ada baris valid untuk diproses."
	msgGroupPredicted = "Prediksi selesai."
)

// GroupForm renders the CSV upload page.
func GroupForm(t template.Template, data template.Data) {
	data["IsGroup"] = true
	data["RequiredColumns"] = batch.RequiredColumns()
	t.HTML(http.StatusOK, "group")
}

// GroupTemplate downloads an empty input table.
func GroupTemplate(c flamego.Context) {
	var buf bytes.Buffer
	if err := batch.WriteTemplate(&buf); err != nil {
		logger.Error("failed to build csv template", "error", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)

		return
	}

	writeCSVAttachment(c, batch.TemplateFileName, buf.Bytes())
}

// GroupUpload evaluates an uploaded CSV and renders the result table. The
// result CSV is kept in the session for GroupResult.
func GroupUpload(c flamego.Context, s session.Session, t template.Template, data template.Data, opts batch.Options) {
	if err := c.Request().ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Error("Error parsing form", "error", err)
		SetErrorFlash(s, "Gagal membaca formulir unggahan")
		c.Redirect("/group", http.StatusSeeOther)

		return
	}

	file, header, err := c.Request().FormFile("csv_file")
	if err != nil {
		logger.Error("Error getting file", "error", err)
		SetErrorFlash(s, "Tidak ada file yang diunggah")
		c.Redirect("/group", http.StatusSeeOther)

		return
	}

	defer func() {
		if err := file.Close(); err != nil {
			logger.Error("Error closing CSV upload file", "error", err)
		}
	}()

	logger.Info("Uploading file", "filename", header.Filename, "bytes", header.Size)

	records, err := batch.Read(file)
	if err != nil {
		logger.Warn("rejected csv upload", "filename", header.Filename, "error", err)

		var missing *batch.MissingColumnsError
		if errors.As(err, &missing) {
			SetErrorFlash(s, missing.Error())
		} else {
			SetErrorFlash(s, "Gagal membaca file CSV: "+err.Error())
		}

		c.Redirect("/group", http.StatusSeeOther)

		return
	}

	report, err := batch.Evaluate(c.Request().Context(), records, opts)
	if err != nil {
		logger.Error("failed to evaluate batch", "error", err)
		SetErrorFlash(s, "Gagal memproses data")
		c.Redirect("/group", http.StatusSeeOther)

		return
	}

	if report.Empty() {
		SetWarningFlash(s, msgNoValidRows)
		c.Redirect("/group", http.StatusSeeOther)

		return
	}

	var buf bytes.Buffer
	if err := batch.Write(&buf, report.Rows); err != nil {
		logger.Error("failed to render result csv", "error", err)
		SetErrorFlash(s, "Gagal menyiapkan hasil")
		c.Redirect("/group", http.StatusSeeOther)

		return
	}

	resultID := uuid.New().String()
	s.Set(sessionKeyGroupResultID, resultID)
	s.Set(sessionKeyGroupResultCSV, buf.Bytes())

	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, row.Values())
	}

	data["IsGroup"] = true
	data["Header"] = batch.OutputColumns()
	data["Rows"] = rows
	data["ResultID"] = resultID
	data["Summary"] = fmt.Sprintf("%d dari %d baris diproses", len(report.Rows), report.Total)
	data["Skipped"] = len(report.Skipped)
	data["Flash"] = FlashMessage{Type: FlashSuccess, Message: msgGroupPredicted}

	t.HTML(http.StatusOK, "group_result")
}

// GroupResult downloads the CSV of the last group evaluation in this
// session.
func GroupResult(c flamego.Context, s session.Session) {
	id := c.Param("id")

	storedID, _ := s.Get(sessionKeyGroupResultID).(string)
	content, ok := s.Get(sessionKeyGroupResultCSV).([]byte)

	if id == "" || id != storedID || !ok {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
		return
	}

	writeCSVAttachment(c, batch.ResultFileName, content)
}

func writeCSVAttachment(c flamego.Context, filename string, content []byte) {
	header := c.ResponseWriter().Header()
	header.Set("Content-Type", "text/csv; charset=utf-8")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write(content); err != nil {
		logger.Warn("failed to write csv download", "filename", filename, "error", err)
	}
}
