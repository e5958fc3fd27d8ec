package handlers

import (
	"fmt"
	"net/http"

	"p9e.in/jobcard/middleware"
	"p9e.in/jobcard/render"
	"p9e.in/jobcard/utils"
)

// Preview returns the styled read-only HTML view of the session record.
// GET /api/v1/jobcard/preview
func Preview(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	sess.Mu.Lock()
	html := render.Preview(sess.Record)
	sess.Mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// ExportPDF generates the printable job card. A backend failure reports the
// missing capability and leaves the session fully usable.
// GET /api/v1/jobcard/export/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	sess.Mu.Lock()
	data, err := render.PDF(sess.Record)
	jobNo := sess.Record.JobNo
	sess.Mu.Unlock()

	if err != nil {
		http.Error(w, "PDF export unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := utils.SanitizeFilename(fmt.Sprintf("JobCard_%s.pdf", jobNo))
	archived := archiveArtifact(r.Context(), filename, "application/pdf", data)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	if archived != "" {
		w.Header().Set("X-Archive-Object", archived)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportExcel generates the multi-sheet workbook export.
// GET /api/v1/jobcard/export/xlsx
func ExportExcel(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	sess.Mu.Lock()
	f, err := render.Workbook(sess.Record)
	jobNo := sess.Record.JobNo
	sess.Mu.Unlock()

	if err != nil {
		http.Error(w, "Excel export unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Excel export unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := utils.SanitizeFilename(fmt.Sprintf("jobcard_%s.xlsx", jobNo))
	archived := archiveArtifact(r.Context(), filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	if archived != "" {
		w.Header().Set("X-Archive-Object", archived)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}
